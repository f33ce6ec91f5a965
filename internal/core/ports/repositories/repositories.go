// Package repositories declares the persistence ports consumed by the core
// services. Implementations live under internal/repositories/database.
package repositories

// RepositoryProvider aggregates all repository ports for wiring.
type RepositoryProvider struct {
	Application ApplicationRepository
	Note        NoteRepository
	AccessLog   AccessLogRepository
	Reviewer    ReviewerRepository
	APIKey      APIKeyRepository
}
