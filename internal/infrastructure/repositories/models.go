package repositories

import (
	"time"

	"gorm.io/gorm"
)

// Database models with GORM tags, kept separate from domain entities.

type DBPrincipal struct {
	ID            uint   `gorm:"primaryKey"`
	Email         string `gorm:"uniqueIndex;size:255"`
	Role          string `gorm:"index;size:32"`
	Status        string `gorm:"index;size:32"`
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (DBPrincipal) TableName() string { return "principals" }

type DBBuilding struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255"`
	Address   string `gorm:"size:512"`
	Status    string `gorm:"index;size:32"`
	ManagerID *uint  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (DBBuilding) TableName() string { return "buildings" }

type DBFloor struct {
	ID         uint `gorm:"primaryKey"`
	BuildingID uint `gorm:"index"`
	Level      int
}

func (DBFloor) TableName() string { return "floors" }

type DBRoom struct {
	ID      uint   `gorm:"primaryKey"`
	FloorID uint   `gorm:"index"`
	Number  string `gorm:"size:32"`
}

func (DBRoom) TableName() string { return "rooms" }

type DBUnit struct {
	ID     uint   `gorm:"primaryKey"`
	RoomID uint   `gorm:"index"`
	Label  string `gorm:"size:32"`
}

func (DBUnit) TableName() string { return "units" }

type DBTenancy struct {
	ID              uint `gorm:"primaryKey"`
	TenantUserID    uint `gorm:"index"`
	UnitID          uint `gorm:"index"`
	StartDate       time.Time
	EndDate         time.Time
	AgreementStatus string `gorm:"index;size:32"`
	MonthlyRent     int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (DBTenancy) TableName() string { return "tenancies" }

type DBComplaint struct {
	ID           uint   `gorm:"primaryKey"`
	TenantUserID uint   `gorm:"index"`
	BuildingID   uint   `gorm:"index"`
	Subject      string `gorm:"size:255"`
	Description  string
	Status       string `gorm:"index;size:32"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (DBComplaint) TableName() string { return "complaints" }

type DBMaintenanceRequest struct {
	ID           uint   `gorm:"primaryKey"`
	TenantUserID uint   `gorm:"index"`
	BuildingID   uint   `gorm:"index"`
	Category     string `gorm:"size:64"`
	Description  string
	Status       string `gorm:"index;size:32"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (DBMaintenanceRequest) TableName() string { return "maintenance_requests" }

type DBPayment struct {
	ID        uint   `gorm:"primaryKey"`
	Reference string `gorm:"uniqueIndex;size:64"`
	TenancyID uint   `gorm:"index"`
	Amount    int64
	Method    string `gorm:"size:32"`
	Status    string `gorm:"index;size:32"`
	DueDate   time.Time
	PaidAt    *time.Time
	CreatedAt time.Time
}

func (DBPayment) TableName() string { return "payments" }

type DBAnnouncement struct {
	ID         uint   `gorm:"primaryKey"`
	BuildingID uint   `gorm:"index"`
	Title      string `gorm:"size:255"`
	Body       string
	PostedBy   uint
	CreatedAt  time.Time
}

func (DBAnnouncement) TableName() string { return "announcements" }
