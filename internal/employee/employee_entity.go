package employee

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Employee maps the employees table owned by the server process. The importer
// only ever inserts; rows are never updated or deleted here.
type Employee struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	EmployeeID string `gorm:"column:employee_id;not null;uniqueIndex" json:"employee_id" validate:"required"`
	Username   string `gorm:"not null;uniqueIndex" json:"username" validate:"required"`
	Password   string `gorm:"not null" json:"-"` // one-way digest, never plaintext
	Name       string `gorm:"not null" json:"name" validate:"required"`
	Department string `gorm:"not null" json:"department" validate:"required"`
	Position   string `gorm:"not null" json:"position" validate:"required"`
	JoinDate   string `gorm:"column:join_date;not null" json:"join_date"`
	Role       string `gorm:"default:employee" json:"role" validate:"oneof=admin employee"`
}

func (Employee) TableName() string {
	return "employees"
}

// Profile is the subset of an employee the compensation importer needs for
// referential-integrity checks.
type Profile struct {
	Name       string
	Department string
	Position   string
}

// IdentitySets holds the unique-key material of the persisted roster. The
// roster importer also uses a value of this type as its in-batch accumulator:
// every accepted row adds its keys before the next row is validated.
type IdentitySets struct {
	EmployeeIDs map[string]struct{}
	Usernames   map[string]struct{}
}

func NewIdentitySets() IdentitySets {
	return IdentitySets{
		EmployeeIDs: make(map[string]struct{}),
		Usernames:   make(map[string]struct{}),
	}
}

func (s IdentitySets) HasEmployeeID(id string) bool {
	_, ok := s.EmployeeIDs[id]
	return ok
}

func (s IdentitySets) HasUsername(name string) bool {
	_, ok := s.Usernames[name]
	return ok
}

// Add records an accepted row's keys so later rows in the same batch see them.
func (s IdentitySets) Add(employeeID, username string) {
	s.EmployeeIDs[employeeID] = struct{}{}
	s.Usernames[username] = struct{}{}
}
