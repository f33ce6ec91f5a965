// Package services contains the core business logic, depending only on the
// repository ports and the field cipher.
package services

import (
	portsrepo "github.com/meridianfs/client_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/platform/fieldcrypt"
	"github.com/meridianfs/client_onboarding_app/internal/utils"
	"github.com/meridianfs/client_onboarding_app/pkg/config"
)

// NewServiceContainer wires every service facade from the repository provider
// and the process-wide collaborators.
func NewServiceContainer(
	repos *portsrepo.RepositoryProvider,
	cfg *config.Config,
	cipher *fieldcrypt.Cipher,
	notifier portssvc.Notifier,
	analytics *utils.AnalyticsClient,
) *portssvc.ServiceContainer {
	codec := NewApplicationCodec(cipher)
	audit := NewAuditService(repos.AccessLog)
	apiKeys := NewAPIKeyService(repos.APIKey, repos.Reviewer)

	return &portssvc.ServiceContainer{
		Intake:  NewIntakeService(repos.Application, codec, notifier, audit, analytics, cfg.ProgramTag),
		Review:  NewReviewService(repos.Application, repos.Note, codec, audit, notifier),
		Auth:    NewAuthService(repos.Reviewer, apiKeys, cfg),
		APIKeys: apiKeys,
		Audit:   audit,
	}
}
