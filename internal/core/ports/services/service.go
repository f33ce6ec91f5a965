// Package services declares the service facades the HTTP layer depends on.
package services

// ServiceContainer aggregates all service facades for route registration.
type ServiceContainer struct {
	Intake  IntakeSvc
	Review  ReviewSvc
	Auth    AuthSvc
	APIKeys APIKeySvc
	Audit   AuditSvc
}
