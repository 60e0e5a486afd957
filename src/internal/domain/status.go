package domain

// AccountStatus is the stored status code of a savings account. The code
// space is sparse so that related states group by hundreds; transfer states
// sit inside the active band.
type AccountStatus int

const (
	StatusSubmittedAndPendingApproval AccountStatus = 100
	StatusApproved                    AccountStatus = 200
	StatusActive                      AccountStatus = 300
	StatusTransferInProgress          AccountStatus = 303
	StatusTransferOnHold              AccountStatus = 304
	StatusWithdrawnByApplicant        AccountStatus = 400
	StatusRejected                    AccountStatus = 500
	StatusClosed                      AccountStatus = 600
	StatusPrematureClosed             AccountStatus = 700
)

// AllAccountStatuses lists every valid status code in ascending code order.
var AllAccountStatuses = []AccountStatus{
	StatusSubmittedAndPendingApproval,
	StatusApproved,
	StatusActive,
	StatusTransferInProgress,
	StatusTransferOnHold,
	StatusWithdrawnByApplicant,
	StatusRejected,
	StatusClosed,
	StatusPrematureClosed,
}

// StatusFromCode maps a stored status code to its AccountStatus. Unknown
// codes are rejected; callers must never default them.
func StatusFromCode(code int) (AccountStatus, error) {
	status := AccountStatus(code)
	switch status {
	case StatusSubmittedAndPendingApproval,
		StatusApproved,
		StatusActive,
		StatusTransferInProgress,
		StatusTransferOnHold,
		StatusWithdrawnByApplicant,
		StatusRejected,
		StatusClosed,
		StatusPrematureClosed:
		return status, nil
	default:
		return 0, InvalidStatusCodeError{Code: code}
	}
}

func (s AccountStatus) Code() int {
	return int(s)
}

func (s AccountStatus) ShortCode() string {
	switch s {
	case StatusSubmittedAndPendingApproval:
		return "savingsAccountStatusType.submitted.and.pending.approval"
	case StatusApproved:
		return "savingsAccountStatusType.approved"
	case StatusActive:
		return "savingsAccountStatusType.active"
	case StatusTransferInProgress:
		return "savingsAccountStatusType.transfer.in.progress"
	case StatusTransferOnHold:
		return "savingsAccountStatusType.transfer.on.hold"
	case StatusWithdrawnByApplicant:
		return "savingsAccountStatusType.withdrawn.by.applicant"
	case StatusRejected:
		return "savingsAccountStatusType.rejected"
	case StatusClosed:
		return "savingsAccountStatusType.closed"
	case StatusPrematureClosed:
		return "savingsAccountStatusType.pre.mature.closure"
	default:
		return "savingsAccountStatusType.invalid"
	}
}

func (s AccountStatus) Label() string {
	switch s {
	case StatusSubmittedAndPendingApproval:
		return "Submitted and pending approval"
	case StatusApproved:
		return "Approved"
	case StatusActive:
		return "Active"
	case StatusTransferInProgress:
		return "Transfer in progress"
	case StatusTransferOnHold:
		return "Transfer on hold"
	case StatusWithdrawnByApplicant:
		return "Withdrawn by applicant"
	case StatusRejected:
		return "Rejected"
	case StatusClosed:
		return "Closed"
	case StatusPrematureClosed:
		return "Premature Closed"
	default:
		return "Invalid"
	}
}

func (s AccountStatus) IsSubmittedAndPendingApproval() bool {
	return s == StatusSubmittedAndPendingApproval
}

func (s AccountStatus) IsApproved() bool {
	return s == StatusApproved
}

func (s AccountStatus) IsRejected() bool {
	return s == StatusRejected
}

func (s AccountStatus) IsWithdrawnByApplicant() bool {
	return s == StatusWithdrawnByApplicant
}

func (s AccountStatus) IsActive() bool {
	return s == StatusActive
}

func (s AccountStatus) IsClosed() bool {
	return s == StatusClosed
}

func (s AccountStatus) IsPrematureClosed() bool {
	return s == StatusPrematureClosed
}

func (s AccountStatus) IsTransferInProgress() bool {
	return s == StatusTransferInProgress
}

func (s AccountStatus) IsTransferOnHold() bool {
	return s == StatusTransferOnHold
}

// StatusDescriptor is the reporting projection of an account status: the
// code triple plus one flag per predicate. The flags are always derived
// from the status, never stored independently.
type StatusDescriptor struct {
	Code      int    `json:"id"`
	ShortCode string `json:"code"`
	Label     string `json:"value"`

	SubmittedAndPendingApproval bool `json:"submittedAndPendingApproval"`
	Approved                    bool `json:"approved"`
	Rejected                    bool `json:"rejected"`
	WithdrawnByApplicant        bool `json:"withdrawnByApplicant"`
	Active                      bool `json:"active"`
	Closed                      bool `json:"closed"`
	PrematureClosed             bool `json:"prematureClosed"`
	TransferInProgress          bool `json:"transferInProgress"`
	TransferOnHold              bool `json:"transferOnHold"`
}

// NewStatusDescriptor builds the descriptor for a stored status code.
func NewStatusDescriptor(code int) (StatusDescriptor, error) {
	status, err := StatusFromCode(code)
	if err != nil {
		return StatusDescriptor{}, err
	}
	return status.Descriptor(), nil
}

func (s AccountStatus) Descriptor() StatusDescriptor {
	return StatusDescriptor{
		Code:                        s.Code(),
		ShortCode:                   s.ShortCode(),
		Label:                       s.Label(),
		SubmittedAndPendingApproval: s.IsSubmittedAndPendingApproval(),
		Approved:                    s.IsApproved(),
		Rejected:                    s.IsRejected(),
		WithdrawnByApplicant:        s.IsWithdrawnByApplicant(),
		Active:                      s.IsActive(),
		Closed:                      s.IsClosed(),
		PrematureClosed:             s.IsPrematureClosed(),
		TransferInProgress:          s.IsTransferInProgress(),
		TransferOnHold:              s.IsTransferOnHold(),
	}
}

// Validate rejects a descriptor whose flags disagree with its code. Used
// when a descriptor arrives from outside instead of being derived here.
func (d StatusDescriptor) Validate() error {
	derived, err := NewStatusDescriptor(d.Code)
	if err != nil {
		return err
	}
	if d != derived {
		return InvalidStatusCodeError{Code: d.Code, Inconsistent: true}
	}
	return nil
}
