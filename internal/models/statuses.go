package models

type UserRole string
type UserStatus string
type SubscriptionStatus string
type DocumentStatus string
type InterviewStatus string
type EmploymentType string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleEmployer UserRole = "employer"
	UserRoleWorker   UserRole = "worker"

	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPending  SubscriptionStatus = "pending"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"

	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusVerified DocumentStatus = "verified"
	DocumentStatusRejected DocumentStatus = "rejected"

	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCanceled  InterviewStatus = "canceled"

	EmploymentTypeLiveIn  EmploymentType = "live_in"
	EmploymentTypeLiveOut EmploymentType = "live_out"
	EmploymentTypeEither  EmploymentType = "either"
)
