package domain

// AccountSubStatus is an operational flag layered on an Active account.
// It never replaces the main status and is meaningless outside of Active.
type AccountSubStatus int

const (
	SubStatusNone        AccountSubStatus = 0
	SubStatusInactive    AccountSubStatus = 100
	SubStatusDormant     AccountSubStatus = 200
	SubStatusEscheat     AccountSubStatus = 300
	SubStatusBlock       AccountSubStatus = 400
	SubStatusBlockCredit AccountSubStatus = 500
	SubStatusBlockDebit  AccountSubStatus = 600
)

// AllAccountSubStatuses lists every valid sub-status code in ascending order.
var AllAccountSubStatuses = []AccountSubStatus{
	SubStatusNone,
	SubStatusInactive,
	SubStatusDormant,
	SubStatusEscheat,
	SubStatusBlock,
	SubStatusBlockCredit,
	SubStatusBlockDebit,
}

// SubStatusFromCode maps a stored sub-status code to its AccountSubStatus.
func SubStatusFromCode(code int) (AccountSubStatus, error) {
	subStatus := AccountSubStatus(code)
	switch subStatus {
	case SubStatusNone,
		SubStatusInactive,
		SubStatusDormant,
		SubStatusEscheat,
		SubStatusBlock,
		SubStatusBlockCredit,
		SubStatusBlockDebit:
		return subStatus, nil
	default:
		return 0, InvalidSubStatusCodeError{Code: code}
	}
}

func (s AccountSubStatus) Code() int {
	return int(s)
}

func (s AccountSubStatus) ShortCode() string {
	switch s {
	case SubStatusNone:
		return "savingsAccountSubStatusType.none"
	case SubStatusInactive:
		return "savingsAccountSubStatusType.inactive"
	case SubStatusDormant:
		return "savingsAccountSubStatusType.dormant"
	case SubStatusEscheat:
		return "savingsAccountSubStatusType.escheat"
	case SubStatusBlock:
		return "savingsAccountSubStatusType.block"
	case SubStatusBlockCredit:
		return "savingsAccountSubStatusType.blockCredit"
	case SubStatusBlockDebit:
		return "savingsAccountSubStatusType.blockDebit"
	default:
		return "savingsAccountSubStatusType.invalid"
	}
}

func (s AccountSubStatus) Label() string {
	switch s {
	case SubStatusNone:
		return "None"
	case SubStatusInactive:
		return "Inactive"
	case SubStatusDormant:
		return "Dormant"
	case SubStatusEscheat:
		return "Escheat"
	case SubStatusBlock:
		return "Block"
	case SubStatusBlockCredit:
		return "Block Credit"
	case SubStatusBlockDebit:
		return "Block Debit"
	default:
		return "Invalid"
	}
}

func (s AccountSubStatus) IsNone() bool {
	return s == SubStatusNone
}

func (s AccountSubStatus) IsInactive() bool {
	return s == SubStatusInactive
}

func (s AccountSubStatus) IsDormant() bool {
	return s == SubStatusDormant
}

func (s AccountSubStatus) IsEscheat() bool {
	return s == SubStatusEscheat
}

func (s AccountSubStatus) IsBlock() bool {
	return s == SubStatusBlock
}

func (s AccountSubStatus) IsBlockCredit() bool {
	return s == SubStatusBlockCredit
}

func (s AccountSubStatus) IsBlockDebit() bool {
	return s == SubStatusBlockDebit
}

// ValidateForStatus enforces that a non-None sub-status only ever
// accompanies an Active main status.
func (s AccountSubStatus) ValidateForStatus(status AccountStatus) error {
	if !s.IsNone() && !status.IsActive() {
		return InvalidSubStatusCodeError{Code: s.Code(), StatusCode: status.Code()}
	}
	return nil
}

// SubStatusDescriptor mirrors StatusDescriptor for the sub-status family.
type SubStatusDescriptor struct {
	Code      int    `json:"id"`
	ShortCode string `json:"code"`
	Label     string `json:"value"`

	None        bool `json:"none"`
	Inactive    bool `json:"inactive"`
	Dormant     bool `json:"dormant"`
	Escheat     bool `json:"escheat"`
	Block       bool `json:"block"`
	BlockCredit bool `json:"blockCredit"`
	BlockDebit  bool `json:"blockDebit"`
}

// NewSubStatusDescriptor builds the descriptor for a stored sub-status code.
func NewSubStatusDescriptor(code int) (SubStatusDescriptor, error) {
	subStatus, err := SubStatusFromCode(code)
	if err != nil {
		return SubStatusDescriptor{}, err
	}
	return subStatus.Descriptor(), nil
}

func (s AccountSubStatus) Descriptor() SubStatusDescriptor {
	return SubStatusDescriptor{
		Code:        s.Code(),
		ShortCode:   s.ShortCode(),
		Label:       s.Label(),
		None:        s.IsNone(),
		Inactive:    s.IsInactive(),
		Dormant:     s.IsDormant(),
		Escheat:     s.IsEscheat(),
		Block:       s.IsBlock(),
		BlockCredit: s.IsBlockCredit(),
		BlockDebit:  s.IsBlockDebit(),
	}
}

// Validate rejects a descriptor whose flags disagree with its code.
func (d SubStatusDescriptor) Validate() error {
	derived, err := NewSubStatusDescriptor(d.Code)
	if err != nil {
		return err
	}
	if d != derived {
		return InvalidSubStatusCodeError{Code: d.Code, Inconsistent: true}
	}
	return nil
}
