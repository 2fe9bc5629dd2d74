package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/jwt"
	"github.com/kiranakart/auth-service/internal/pkg/logger"
	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/internal/utils"
	"github.com/kiranakart/auth-service/services/auth"
)

// credentialGateway validates credential submissions. The authority
// endpoint is selected by the caller's declared actor class; the
// super-admin pair is matched locally before any network call and
// bypasses the second factor entirely.
type credentialGateway struct {
	cfg *models.Config
	gw  auth.AuthGW
}

func newCredentialGateway(cfg *models.Config, gw auth.AuthGW) *credentialGateway {
	return &credentialGateway{cfg: cfg, gw: gw}
}

// Login validates a credential pair for the declared actor class.
// Authority rejections come back as a Rejected outcome with the
// authority's message; network failures and local validation failures
// come back as errors.
func (g *credentialGateway) Login(ctx context.Context, class models.ActorClass, email, password string) (*models.Outcome, error) {
	email = utils.NormalizeEmail(email)

	if !utils.ValidEmailFormat(email) {
		return nil, apperrors.Validation("Please enter a valid email address")
	}
	if password == "" {
		return nil, apperrors.Validation("Password is required")
	}

	if class == models.ActorAdmin && g.isSuperAdmin(email, password) {
		return g.superAdminOutcome(email)
	}

	switch class {
	case models.ActorAdmin:
		return g.adminLogin(ctx, email, password)
	default:
		return g.customerLogin(ctx, email, password)
	}
}

// isSuperAdmin matches the configured privileged pair: email
// case-insensitively, password byte-exact
func (g *credentialGateway) isSuperAdmin(email, password string) bool {
	configured := utils.NormalizeEmail(g.cfg.SuperAdmin.Email)
	if configured == "" {
		return false
	}
	return email == configured && password == g.cfg.SuperAdmin.Password
}

func (g *credentialGateway) superAdminOutcome(email string) (*models.Outcome, error) {
	token, _, err := jwt.GenerateToken(email, string(models.RoleSuperAdmin), g.cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("Super-admin authenticated locally",
		logger.String("email", email))

	return &models.Outcome{
		Status: models.OutcomeAuthenticated,
		Identity: &models.Identity{
			Email: email,
			Role:  models.RoleSuperAdmin,
			Token: token,
		},
	}, nil
}

func (g *credentialGateway) customerLogin(ctx context.Context, email, password string) (*models.Outcome, error) {
	resp, err := g.gw.CustomerLogin(ctx, email, password)
	if err != nil {
		return rejectionOrError(err)
	}

	return &models.Outcome{
		Status: models.OutcomeAuthenticated,
		Identity: &models.Identity{
			Email: email,
			Role:  models.RoleCustomer,
			Token: resp.Token,
		},
		Raw: resp.Raw,
	}, nil
}

// adminLogin validates an admin pair. Success is never a session: the
// identity stays provisional until the OTP challenge completes.
func (g *credentialGateway) adminLogin(ctx context.Context, email, password string) (*models.Outcome, error) {
	resp, err := g.gw.AdminLogin(ctx, email, password)
	if err != nil {
		return rejectionOrError(err)
	}

	role := models.RoleSubAdmin
	if strings.EqualFold(resp.Role, string(models.RoleSuperAdmin)) {
		role = models.RoleSuperAdmin
	}

	return &models.Outcome{
		Status: models.OutcomeNeedsSecondFactor,
		Identity: &models.Identity{
			Email: email,
			Role:  role,
		},
		Raw: resp.Raw,
	}, nil
}

// rejectionOrError maps an explicit authority rejection to a Rejected
// outcome and passes everything else through as an error
func rejectionOrError(err error) (*models.Outcome, error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindAuthorization, apperrors.KindAlreadyExists, apperrors.KindValidation:
		var ae *apperrors.Error
		reason := "Invalid email or password"
		if errors.As(err, &ae) {
			reason = ae.Message
		}
		return &models.Outcome{Status: models.OutcomeRejected, Reason: reason}, nil
	default:
		return nil, err
	}
}
