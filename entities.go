package khata

import (
	"encoding/json"
	"fmt"

	"github.com/sangam/khata/date"
	"github.com/shopspring/decimal"
)

// MemberStatus is the lifecycle state of a member.
type MemberStatus int

const (
	MemberActive MemberStatus = iota
	MemberInactive
	MemberClosed
)

func (s MemberStatus) String() string {
	switch s {
	case MemberActive:
		return "active"
	case MemberInactive:
		return "inactive"
	case MemberClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ParseMemberStatus parses a string into a MemberStatus.
func ParseMemberStatus(s string) (MemberStatus, error) {
	switch s {
	case "active":
		return MemberActive, nil
	case "inactive":
		return MemberInactive, nil
	case "closed":
		return MemberClosed, nil
	default:
		return 0, fmt.Errorf("unknown member status: %q", s)
	}
}

func (s MemberStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }
func (s *MemberStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	v, err := ParseMemberStatus(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MemberType distinguishes how a member belongs to the group.
type MemberType int

const (
	Primary MemberType = iota
	Associate
	Nominated
)

func (t MemberType) String() string {
	switch t {
	case Primary:
		return "primary"
	case Associate:
		return "associate"
	case Nominated:
		return "nominated"
	default:
		return "unknown"
	}
}

// ParseMemberType parses a string into a MemberType.
func ParseMemberType(s string) (MemberType, error) {
	switch s {
	case "primary":
		return Primary, nil
	case "associate":
		return Associate, nil
	case "nominated":
		return Nominated, nil
	default:
		return 0, fmt.Errorf("unknown member type: %q", s)
	}
}

func (t MemberType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }
func (t *MemberType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	v, err := ParseMemberType(str)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// LoanStatus is the lifecycle state of a loan application.
// The transition is monotonic: pending goes to approved or rejected, both terminal.
type LoanStatus int

const (
	LoanPending LoanStatus = iota
	LoanApproved
	LoanRejected
)

func (s LoanStatus) String() string {
	switch s {
	case LoanPending:
		return "pending"
	case LoanApproved:
		return "approved"
	case LoanRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// ParseLoanStatus parses a string into a LoanStatus.
func ParseLoanStatus(s string) (LoanStatus, error) {
	switch s {
	case "pending":
		return LoanPending, nil
	case "approved":
		return LoanApproved, nil
	case "rejected":
		return LoanRejected, nil
	default:
		return 0, fmt.Errorf("unknown loan status: %q", s)
	}
}

func (s LoanStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }
func (s *LoanStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	v, err := ParseLoanStatus(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// User is a staff record. Users only serve as collector and staff references;
// credentials and sessions are outside this package.
type User struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// Member belongs to a group and owns savings and loans by reference.
type Member struct {
	ID       int          `json:"id"`
	GroupID  int          `json:"group"`
	Name     string       `json:"name"`
	Status   MemberStatus `json:"status"`
	Type     MemberType   `json:"type"`
	JoinedOn date.Date    `json:"joined"`
}

// Group is the SHG organizational unit. It owns members by reference.
type Group struct {
	ID      int    `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Active  bool   `json:"active"`
	StaffID int    `json:"staff,omitempty"`
}

// SavingProduct defines a savings scheme and its annual interest rate in percent.
type SavingProduct struct {
	ID     int             `json:"id"`
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Active bool            `json:"active"`
}

// LoanProduct defines a loan scheme: annual interest rate in percent and a
// ceiling on the principal.
type LoanProduct struct {
	ID        int             `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	MaxAmount Money           `json:"maxAmount"`
	Active    bool            `json:"active"`
}

// Saving is one append-only ledger line: a positive amount is a deposit, a
// negative one a withdrawal. Once created it is never mutated or deleted;
// corrections are new entries.
type Saving struct {
	ID          int       `json:"id"`
	MemberID    int       `json:"member"`
	ProductID   int       `json:"product"`
	Amount      Money     `json:"amount"`
	On          date.Date `json:"date"`
	CollectorID int       `json:"collector,omitempty"`
}

// Loan is a loan application and, once approved, the fixed contract: amount,
// rate and tenor are set at approval time and never recomputed.
type Loan struct {
	ID         int             `json:"id"`
	MemberID   int             `json:"member"`
	ProductID  int             `json:"product"`
	Amount     Money           `json:"amount"`
	Rate       decimal.Decimal `json:"rate"`
	Tenor      int             `json:"tenor"`
	Purpose    string          `json:"purpose,omitempty"`
	Status     LoanStatus      `json:"status"`
	AppliedOn  date.Date       `json:"applied"`
	ApprovedOn *date.Date      `json:"approved,omitempty"`
	EMI        Money           `json:"emi"`
}

// IssuedOn returns the date the loan money moved: the approval date, falling
// back to the application date for book entries predating approval tracking.
func (l Loan) IssuedOn() date.Date {
	if l.ApprovedOn != nil {
		return *l.ApprovedOn
	}
	return l.AppliedOn
}

// Repayment is one append-only ledger line against a loan.
type Repayment struct {
	ID          int       `json:"id"`
	LoanID      int       `json:"loan"`
	Amount      Money     `json:"amount"`
	On          date.Date `json:"date"`
	Kind        string    `json:"kind,omitempty"` // e.g. "emi"
	CollectorID int       `json:"collector,omitempty"`
}

// MeetingType is reference data for meeting records.
type MeetingType struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// FinancialYear is reference data bounding a reporting year.
type FinancialYear struct {
	ID   int       `json:"id"`
	Code string    `json:"code"`
	From date.Date `json:"from"`
	To   date.Date `json:"to"`
}

// Meeting records one group meeting and its attendance.
type Meeting struct {
	ID        int       `json:"id"`
	GroupID   int       `json:"group"`
	On        date.Date `json:"date"`
	TypeID    int       `json:"type"`
	Attendees []int     `json:"attendees,omitempty"`
	Remarks   string    `json:"remarks,omitempty"`
	CreatedBy int       `json:"createdBy,omitempty"`
}
