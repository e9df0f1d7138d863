package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skytails/internal/auth"
	apperrors "skytails/internal/errors"
	"skytails/internal/model"
	"skytails/internal/repository"
)

const bcryptCost = 10

// OnboardingInput is the validated-on-the-server submission contract. Client
// wizards validate too, but only the server-side validator tags are
// authoritative; fields are declared in the order violations must be
// reported in.
type OnboardingInput struct {
	User OnboardingUser `json:"user"`
	Pet  OnboardingPet  `json:"pet"`
	Plan OnboardingPlan `json:"plan"`
}

// OnboardingUser is the user slice of a submission. Username defaults to the
// email; password is optional at this boundary and hashed when present.
type OnboardingUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty"`
	Country  string `json:"country"`
	Username string `json:"username,omitempty"`
}

// OnboardingPet is the pet slice of a submission.
type OnboardingPet struct {
	Name      string        `json:"name" validate:"required"`
	Type      model.PetType `json:"type" validate:"required,oneof=Dog Cat Other"`
	Age       int           `json:"age" validate:"gte=0"`
	AvatarURL string        `json:"avatarUrl,omitempty"`
}

// OnboardingPlan is the plan slice of a submission.
type OnboardingPlan struct {
	Tier                model.PlanTier `json:"tier" validate:"required,oneof=Classic Core Premium"`
	MonthlyContribution int            `json:"monthlyContribution" validate:"gt=0"`
}

// OnboardingResult reports a successful submission. The session token is set
// as a cookie by the handler so the client is immediately authenticated; it
// is empty when the records committed but no session could be established.
type OnboardingResult struct {
	UserID       uint
	SessionToken string
}

// OnboardingService persists a validated submission atomically and
// establishes a session for the new user. Close drains the audit worker.
type OnboardingService interface {
	Submit(ctx context.Context, input *OnboardingInput) (*OnboardingResult, error)
	Close()
}

type onboardingService struct {
	onboardingRepo repository.OnboardingRepository
	sessions       auth.SessionStoreInterface
	tokens         *auth.TokenService
	eventRepo      repository.SignupEventRepository
	cache          ViewCache
	// Channel for async signup event logging
	eventChannel chan model.SignupEvent
	workerDone   chan struct{}
}

// NewOnboardingService creates a new onboarding service and starts its async
// audit worker.
func NewOnboardingService(
	onboardingRepo repository.OnboardingRepository,
	sessions auth.SessionStoreInterface,
	tokens *auth.TokenService,
	eventRepo repository.SignupEventRepository,
	cache ViewCache,
) OnboardingService {
	s := &onboardingService{
		onboardingRepo: onboardingRepo,
		sessions:       sessions,
		tokens:         tokens,
		eventRepo:      eventRepo,
		cache:          cache,
		eventChannel:   make(chan model.SignupEvent, 100),
		workerDone:     make(chan struct{}),
	}

	go s.eventWorker()

	return s
}

// Close stops the audit worker after it has flushed every queued event.
// Submit must not be called after Close.
func (s *onboardingService) Close() {
	close(s.eventChannel)
	<-s.workerDone
}

// eventWorker batches signup audit events until the channel is closed.
func (s *onboardingService) eventWorker() {
	defer close(s.workerDone)

	ctx := context.Background()
	batch := make([]model.SignupEvent, 0, 10)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-s.eventChannel:
			if !ok {
				if len(batch) > 0 {
					_ = s.eventRepo.CreateBatch(ctx, batch)
				}
				return
			}
			batch = append(batch, event)
			if len(batch) >= 10 {
				_ = s.eventRepo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				_ = s.eventRepo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

// Submit runs the atomic user+pet+plan creation and on success establishes a
// session bound to the new user. The payload must already have passed the
// request validator.
func (s *onboardingService) Submit(ctx context.Context, input *OnboardingInput) (*OnboardingResult, error) {
	user := &model.User{
		Email:    input.User.Email,
		Username: input.User.Username,
		Country:  input.User.Country,
	}
	if user.Username == "" {
		user.Username = input.User.Email
	}
	if input.User.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.User.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	pet := &model.Pet{
		Name:      input.Pet.Name,
		Type:      input.Pet.Type,
		Age:       input.Pet.Age,
		AvatarURL: input.Pet.AvatarURL,
	}
	plan := &model.Plan{
		Tier:                input.Plan.Tier,
		MonthlyContribution: input.Plan.MonthlyContribution,
	}

	if err := s.onboardingRepo.CreateUserWithData(ctx, user, pet, plan); err != nil {
		s.recordEvent(ctx, model.SignupEvent{
			Email:        input.User.Email,
			Status:       model.SignupStatusFailed,
			ErrorMessage: err.Error(),
		})
		if isDuplicateKey(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("create onboarding records: %w", err)
	}

	// A stale cached view under this id could survive a RESET_DB id reuse.
	_ = s.cache.Delete(ctx, dashboardCacheKey(user.ID))

	result := &OnboardingResult{UserID: user.ID}

	// The records are committed: a session failure must not mask the created
	// account, or the client's retry collides with it. They get the account
	// without a cookie and log in separately.
	if sessionID, err := s.sessions.Create(ctx, user.ID, user.Username); err == nil {
		if token, err := s.tokens.Mint(sessionID, user.ID, user.Username); err == nil {
			result.SessionToken = token
		}
	}

	s.recordEvent(ctx, model.SignupEvent{
		UserID: user.ID,
		Email:  user.Email,
		Status: model.SignupStatusAccepted,
	})

	return result, nil
}

// recordEvent queues a signup audit event, falling back to a synchronous
// write when the channel is full.
func (s *onboardingService) recordEvent(ctx context.Context, event model.SignupEvent) {
	select {
	case s.eventChannel <- event:
	default:
		_ = s.eventRepo.Create(ctx, &event)
	}
}

func isDuplicateKey(err error) bool {
	for e := err; e != nil; {
		if e == gorm.ErrDuplicatedKey {
			return true
		}
		type unwrapper interface{ Unwrap() error }
		u, ok := e.(unwrapper)
		if !ok {
			return false
		}
		e = u.Unwrap()
	}
	return false
}
