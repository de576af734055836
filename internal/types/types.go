// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription plans and durations accepted on a Business record.
const (
	PlanFree     = "free"
	PlanStandard = "standard"
	PlanBusiness = "business"

	DurationMonth    = "month"
	DurationYear     = "year"
	DurationLifetime = "lifetime"
)

// LifetimeEnd is the far-future sentinel used for lifetime subscriptions.
var LifetimeEnd = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)

type Business struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	District  string             `bson:"district"`
	Sector    string             `bson:"sector"`
	Cell      string             `bson:"cell"`
	Village   string             `bson:"village"`
	Plan      string             `bson:"plan"`
	Duration  string             `bson:"duration"`
	StartDate time.Time          `bson:"start_date"`
	EndDate   time.Time          `bson:"end_date"`
	IsActive  bool               `bson:"is_active"`
	Photo     string             `bson:"photo"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// User is keyed by the identity provider's account ID, not a store-generated
// ObjectID.
type User struct {
	ID         string              `bson:"_id"`
	FirstName  string              `bson:"first_name"`
	LastName   string              `bson:"last_name"`
	Email      string              `bson:"email"`
	Phone      string              `bson:"phone"`
	Gender     string              `bson:"gender"`
	Role       string              `bson:"role"`
	Branch     *primitive.ObjectID `bson:"branch,omitempty"`
	BusinessID string              `bson:"business_id"`
	IsActive   bool                `bson:"is_active"`
	Photo      string              `bson:"photo"`
	CreatedAt  time.Time           `bson:"created_at"`
	UpdatedAt  time.Time           `bson:"updated_at"`
}

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type Branch struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	District string             `bson:"district"`
	Sector   string             `bson:"sector"`
	Cell     string             `bson:"cell"`
	Village  string             `bson:"village"`
}

type Transaction struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	BusinessID string             `bson:"business_id"`
	PayerPhone string             `bson:"payer_phone"`
	Date       time.Time          `bson:"date"`
	Amount     float64            `bson:"amount"`
	Plan       string             `bson:"plan"`
	Confirm    bool               `bson:"confirm"`
	CreatedAt  time.Time          `bson:"created_at"`
}

// Principal is the request-scoped identity attached after successful
// authorization. It is never persisted.
type Principal struct {
	ID       string
	Role     string
	Username string
	Branch   string
}
