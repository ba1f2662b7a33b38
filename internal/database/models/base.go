package models

import (
	"time"
)

// SystemActor is recorded in audit fields when the caller does not name one.
const SystemActor = "System"

// Entity is implemented by every persisted record. Generic repositories and
// handlers are constrained on it, so identity is always available without
// reflection.
type Entity interface {
	GetID() uint
	SetID(id uint)
	Audit() *AuditFields
}

// AuditFields tracks who created and last modified a row.
type AuditFields struct {
	CreatedBy    string    `json:"createdBy" gorm:"size:100;not null" validate:"required,max=100"`
	CreatedDate  time.Time `json:"createdDate" gorm:"not null" validate:"required"`
	ModifiedBy   string    `json:"modifiedBy" gorm:"size:100;not null" validate:"required,max=100"`
	ModifiedDate time.Time `json:"modifiedDate" gorm:"not null" validate:"required"`
}

// Audit exposes the audit block of the embedding entity.
func (a *AuditFields) Audit() *AuditFields {
	return a
}

// StampCreated fills the created and modified fields for a new row.
// Actors supplied by the caller are kept.
func (a *AuditFields) StampCreated(now time.Time) {
	if a.CreatedBy == "" {
		a.CreatedBy = SystemActor
	}
	a.CreatedDate = now
	if a.ModifiedBy == "" {
		a.ModifiedBy = a.CreatedBy
	}
	a.ModifiedDate = now
}

// StampModified refreshes the modified fields and restores the created fields
// from the stored row, which callers cannot overwrite.
func (a *AuditFields) StampModified(stored *AuditFields, now time.Time) {
	a.CreatedBy = stored.CreatedBy
	a.CreatedDate = stored.CreatedDate
	if a.ModifiedBy == "" {
		a.ModifiedBy = SystemActor
	}
	a.ModifiedDate = now
}

// BaseEntity provides identity, code, name and audit fields for primary entities
type BaseEntity struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Code string `json:"code" gorm:"size:50;not null" validate:"required,max=50"`
	Name string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	AuditFields
}

func (b *BaseEntity) GetID() uint   { return b.ID }
func (b *BaseEntity) SetID(id uint) { b.ID = id }

// JoinEntity provides identity and audit fields for relationship rows
type JoinEntity struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
	AuditFields
}

func (j *JoinEntity) GetID() uint   { return j.ID }
func (j *JoinEntity) SetID(id uint) { j.ID = id }

// Defaulter is implemented by entities whose fields have non-zero defaults.
// Defaults are applied before a request body is decoded onto the entity.
type Defaulter interface {
	ApplyDefaults()
}
