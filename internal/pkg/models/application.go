package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus represents the review state of a driver application
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsTerminal reports whether the application has been decided
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// DriverApplication represents a user's request to be verified as a driver.
// Document fields hold opaque references to files already stored by the
// upload collaborator.
type DriverApplication struct {
	ID            int64             `json:"applicationId" db:"id"`
	UserID        uuid.UUID         `json:"userId" db:"user_id"`
	FullName      string            `json:"fullname" db:"fullname"`
	VehicleType   string            `json:"vehicleType" db:"vehicle_type"`
	VehiclePlate  string            `json:"vehiclePlate" db:"vehicle_plate"`
	LicenseNumber string            `json:"licenseNumber" db:"license_number"`
	LicenseDocRef string            `json:"licenseDocRef" db:"license_doc_ref"`
	IDDocRef      string            `json:"idDocRef" db:"id_doc_ref"`
	Status        ApplicationStatus `json:"status" db:"status"`
	CreatedAt     time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time         `json:"updatedAt" db:"updated_at"`
}

// SubmitApplicationRequest is the payload for submitting a driver application
type SubmitApplicationRequest struct {
	FullName      string `json:"fullname"`
	VehicleType   string `json:"vehicleType"`
	VehiclePlate  string `json:"vehiclePlate"`
	LicenseNumber string `json:"licenseNumber"`
	LicenseDocRef string `json:"licenseDocRef"`
	IDDocRef      string `json:"idDocRef"`
}

// ApplicationVerdict values accepted by the decision endpoint
const (
	VerdictApproved = "approved"
	VerdictRejected = "rejected"
)

// DecideApplicationRequest is the payload for an administrator decision
type DecideApplicationRequest struct {
	Verdict string `json:"verdict"`
}
