package models

type RequestStatus string

const (
	RequestStatusPendingHodApproval     RequestStatus = "pending_hod_approval"
	RequestStatusPendingFinanceApproval RequestStatus = "pending_finance_approval"
	RequestStatusApproved               RequestStatus = "approved"
	RequestStatusRejected               RequestStatus = "rejected"
)

var statusHumanName = map[RequestStatus]string{
	RequestStatusPendingHodApproval:     "Pending head of department approval",
	RequestStatusPendingFinanceApproval: "Pending finance approval",
	RequestStatusApproved:               "Approved",
	RequestStatusRejected:               "Rejected",
}

func (s RequestStatus) ToHuman() string {
	if human, exist := statusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// statusOnApprove is the only legal approve transition per status.
var statusOnApprove = map[RequestStatus]RequestStatus{
	RequestStatusPendingHodApproval:     RequestStatusPendingFinanceApproval,
	RequestStatusPendingFinanceApproval: RequestStatusApproved,
}

func (s RequestStatus) OnApprove() (next RequestStatus, ok bool) {
	next, ok = statusOnApprove[s]
	return next, ok
}

func (s RequestStatus) AllowReject() bool {
	return !s.IsTerminal()
}

// ApproverRole is the role expected to act while the request sits in this status.
func (s RequestStatus) ApproverRole() UserRole {
	switch s {
	case RequestStatusPendingHodApproval:
		return UserRoleDepartmentHead
	case RequestStatusPendingFinanceApproval:
		return UserRoleFinanceOfficer
	}
	return ""
}

type ApprovalStage string

const (
	ApprovalStageHod     ApprovalStage = "hod"
	ApprovalStageFinance ApprovalStage = "finance"
)

func (s RequestStatus) Stage() ApprovalStage {
	switch s {
	case RequestStatusPendingHodApproval:
		return ApprovalStageHod
	case RequestStatusPendingFinanceApproval:
		return ApprovalStageFinance
	}
	return ""
}

type FormType string

const (
	FormTypePettyCash    FormType = "petty_cash"
	FormTypeExamDuty     FormType = "exam_duty"
	FormTypeTransport    FormType = "transport"
	FormTypePaperMarking FormType = "paper_marking"
	FormTypeOvertime     FormType = "overtime"
)

var formTypeHumanName = map[FormType]string{
	FormTypePettyCash:    "Petty cash",
	FormTypeExamDuty:     "Exam duty",
	FormTypeTransport:    "Transport claim",
	FormTypePaperMarking: "Paper marking",
	FormTypeOvertime:     "Overtime",
}

func (f FormType) ToHuman() string {
	if human, exist := formTypeHumanName[f]; exist {
		return human
	}
	return string(f)
}

func (f FormType) IsValid() bool {
	_, exist := formTypeHumanName[f]
	return exist
}

type OtpPurpose string

const (
	OtpPurposeApproval  OtpPurpose = "approval"
	OtpPurposeRejection OtpPurpose = "rejection"
	OtpPurposeLogin     OtpPurpose = "login"
)

func (p OtpPurpose) IsValid() bool {
	switch p {
	case OtpPurposeApproval, OtpPurposeRejection, OtpPurposeLogin:
		return true
	}
	return false
}
