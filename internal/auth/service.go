package auth

import (
	"context"
	"slices"

	"NotificationHub/internal/config"

	"go.uber.org/zap"
)

type UserService struct {
	store  UserStore
	secret []byte
	cfg    *config.AppConfig
	log    *zap.Logger
}

func NewUserService(store UserStore, cfg *config.AppConfig, log *zap.Logger) *UserService {
	return &UserService{
		store:  store,
		secret: []byte(cfg.JWTSecret),
		cfg:    cfg,
		log:    log,
	}
}

func validateRoles(roles []string) error {
	for _, role := range roles {
		if !slices.Contains(ValidRoles, role) {
			return badRequest("Role %q is not one of email, sms, push", role)
		}
	}
	return nil
}

// Register creates a user and returns it with a signed token. The duplicate
// pre-check is case-insensitive; the unique index on emailaddress catches
// the race where two registrations pass the pre-check concurrently.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	if req.Name == "" || req.EmailAddress == "" || req.Password == "" ||
		req.PhoneNumber == "" || req.DeviceToken == "" || len(req.Roles) == 0 {
		return nil, "", badRequest("Name, email, password, and roles are required")
	}
	if err := validateRoles(req.Roles); err != nil {
		return nil, "", err
	}

	existing, err := s.store.FindByEmail(ctx, req.EmailAddress)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &User{
		Name:         req.Name,
		EmailAddress: req.EmailAddress,
		Password:     hash,
		PhoneNumber:  req.PhoneNumber,
		DeviceToken:  req.DeviceToken,
		Roles:        req.Roles,
	}
	if err := s.store.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	s.log.Info("user registered", zap.String("emailaddress", user.EmailAddress))

	token, err := GenerateToken(s.secret, user, s.cfg.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates by email and password. Both unknown email and wrong
// password return the same generic error.
func (s *UserService) Login(ctx context.Context, cred Credential) (string, error) {
	if cred.EmailAddress == "" || cred.Password == "" {
		return "", badRequest("Email and password are required")
	}

	user, err := s.store.FindByEmail(ctx, cred.EmailAddress)
	if err != nil {
		return "", err
	}
	if user == nil || !CheckPasswordHash(cred.Password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return GenerateToken(s.secret, user, s.cfg.TokenTTL)
}

// Replace applies PUT semantics: provided fields overwrite the stored ones,
// including the role set.
func (s *UserService) Replace(ctx context.Context, userID string, req UpdateRequest) (*User, string, error) {
	return s.applyUpdate(ctx, userID, req, false)
}

// Update applies PATCH semantics: provided fields are merged, and new roles
// are unioned into the existing set rather than overwriting it.
func (s *UserService) Update(ctx context.Context, userID string, req UpdateRequest) (*User, string, error) {
	if req.Name == "" && req.EmailAddress == "" && req.Password == "" &&
		req.PhoneNumber == "" && req.DeviceToken == "" && len(req.Roles) == 0 {
		return nil, "", badRequest("No updates provided")
	}
	return s.applyUpdate(ctx, userID, req, true)
}

func (s *UserService) applyUpdate(ctx context.Context, userID string, req UpdateRequest, mergeRoles bool) (*User, string, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if req.EmailAddress != "" && req.EmailAddress != user.EmailAddress {
		existing, err := s.store.FindByEmail(ctx, req.EmailAddress)
		if err != nil {
			return nil, "", err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, "", ErrEmailTaken
		}
		user.EmailAddress = req.EmailAddress
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.DeviceToken != "" {
		user.DeviceToken = req.DeviceToken
	}
	if len(req.Roles) > 0 {
		if err := validateRoles(req.Roles); err != nil {
			return nil, "", err
		}
		if mergeRoles {
			user.Roles = unionRoles(user.Roles, req.Roles)
		} else {
			user.Roles = req.Roles
		}
	}
	if req.Password != "" {
		hash, err := HashPassword(req.Password)
		if err != nil {
			return nil, "", err
		}
		user.Password = hash
	}

	if err := s.store.Update(ctx, user); err != nil {
		return nil, "", err
	}

	// Roles or identities may have changed, so the caller gets a fresh token.
	token, err := GenerateToken(s.secret, user, s.cfg.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func unionRoles(existing, added []string) []string {
	merged := slices.Clone(existing)
	for _, role := range added {
		if !slices.Contains(merged, role) {
			merged = append(merged, role)
		}
	}
	return merged
}

func (s *UserService) GetByID(ctx context.Context, userID string) (*User, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) DeleteByID(ctx context.Context, userID string) error {
	user, err := s.store.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	s.log.Info("user deleted", zap.String("id", userID))
	return nil
}
