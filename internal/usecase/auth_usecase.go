package usecase

import (
	"context"
	"errors"
	"strings"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/password"
	"job-portal-backend/pkg/token"
)

const invalidCredentials = "Invalid credentials"

type authUsecase struct {
	userRepo      domain.UserRepository
	applicantRepo domain.ApplicantRepository
	companyRepo   domain.CompanyRepository
	hasher        *password.Hasher
	tokens        *token.Service
	// dummyDigest is verified against when the email is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyDigest string
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	applicantRepo domain.ApplicantRepository,
	companyRepo domain.CompanyRepository,
	hasher *password.Hasher,
	tokens *token.Service,
) domain.AuthUsecase {
	dummy, _ := hasher.Hash("job-portal-unknown-account")
	return &authUsecase{
		userRepo:      userRepo,
		applicantRepo: applicantRepo,
		companyRepo:   companyRepo,
		hasher:        hasher,
		tokens:        tokens,
		dummyDigest:   dummy,
	}
}

// Register creates the identity and its role profile in one transaction and signs a token for it.
func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, apperror.BadRequest("Email, password and name are required")
	}
	if !domain.IsValidRole(in.Role) {
		return nil, apperror.BadRequest("Role must be applicant or company")
	}

	digest, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:        in.Email,
		PasswordHash: digest,
		Role:         in.Role,
		Name:         in.Name,
	}

	var (
		applicant *domain.Applicant
		company   *domain.Company
	)
	switch in.Role {
	case domain.RoleApplicant:
		applicant = &domain.Applicant{
			LinkedIn: in.LinkedIn,
			GitHub:   in.GitHub,
			Resume:   in.Resume,
			Skills:   in.Skills,
		}
		err = u.userRepo.CreateWithApplicant(ctx, user, applicant)
	case domain.RoleCompany:
		if in.Industry == "" || in.Brief == "" || in.Website == "" {
			return nil, apperror.BadRequest("Industry, brief and website are required for company accounts")
		}
		name := strings.TrimSpace(in.CompanyName)
		if name == "" {
			name = in.Name
		}
		company = &domain.Company{
			Name:     name,
			Industry: in.Industry,
			Logo:     in.Logo,
			Brief:    in.Brief,
			Website:  in.Website,
		}
		err = u.userRepo.CreateWithCompany(ctx, user, company)
	}
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return nil, apperror.Conflict("Email already registered")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return u.issue(user, applicant, company)
}

// Login answers "Invalid credentials" for both an unknown email and a wrong password.
func (u *authUsecase) Login(ctx context.Context, email, plaintext string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		u.hasher.Verify(plaintext, u.dummyDigest)
		return nil, apperror.Unauthorized(invalidCredentials)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !u.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	applicant, company, err := u.loadRoleProfile(ctx, user)
	if err != nil {
		return nil, err
	}
	return u.issue(user, applicant, company)
}

func (u *authUsecase) Profile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	applicant, company, err := u.loadRoleProfile(ctx, user)
	if err != nil {
		return nil, err
	}
	return domain.NewUserProfile(user, applicant, company), nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// loadRoleProfile fetches the profile matching the user's role. A missing
// profile is tolerated and yields a bare user summary.
func (u *authUsecase) loadRoleProfile(ctx context.Context, user *domain.User) (*domain.Applicant, *domain.Company, error) {
	switch user.Role {
	case domain.RoleApplicant:
		a, err := u.applicantRepo.GetByUserID(ctx, user.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, nil
		}
		if err != nil {
			return nil, nil, apperror.Internal(err)
		}
		return a, nil, nil
	case domain.RoleCompany:
		c, err := u.companyRepo.GetByUserID(ctx, user.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, nil
		}
		if err != nil {
			return nil, nil, apperror.Internal(err)
		}
		return nil, c, nil
	}
	return nil, nil, nil
}

func (u *authUsecase) issue(user *domain.User, a *domain.Applicant, c *domain.Company) (*domain.AuthResult, error) {
	signed, err := u.tokens.Issue(token.Identity{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{Token: signed, User: domain.NewUserProfile(user, a, c)}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
