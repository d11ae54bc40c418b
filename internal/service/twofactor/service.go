package twofactor

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/domain/twofactor"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/email"
)

const (
	codeTTL         = 5 * time.Minute
	backupCodeCount = 8
	issuer          = "TalentsFlow"
)

type TwoFactorServiceImpl struct {
	twoFactorRepo twofactor.TwoFactorRepository
	codeStore     twofactor.CodeStore
	employeeRepo  employee.EmployeeRepository
	emailService  email.EmailService
	clock         clock.Clock
}

func NewTwoFactorService(
	twoFactorRepo twofactor.TwoFactorRepository,
	codeStore twofactor.CodeStore,
	employeeRepo employee.EmployeeRepository,
	emailService email.EmailService,
	clk clock.Clock,
) twofactor.TwoFactorService {
	return &TwoFactorServiceImpl{
		twoFactorRepo: twoFactorRepo,
		codeStore:     codeStore,
		employeeRepo:  employeeRepo,
		emailService:  emailService,
		clock:         clk,
	}
}

func (s *TwoFactorServiceImpl) Enable(ctx context.Context, req twofactor.EnableRequest) (twofactor.SetupResponse, error) {
	if err := req.Validate(); err != nil {
		return twofactor.SetupResponse{}, err
	}

	existing, err := s.twoFactorRepo.GetByUserID(ctx, req.UserID)
	hasExisting := err == nil
	if hasExisting && existing.Enabled {
		return twofactor.SetupResponse{}, twofactor.ErrAlreadyEnabled
	}

	method := twofactor.TwoFactorMethod(req.Method)
	backupCodes, err := generateBackupCodes()
	if err != nil {
		return twofactor.SetupResponse{}, err
	}
	hashedCodes, err := hashBackupCodes(backupCodes)
	if err != nil {
		return twofactor.SetupResponse{}, err
	}

	now := s.clock.Now()
	tfa := twofactor.TwoFactorAuth{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		Method:      method,
		BackupCodes: hashedCodes,
		Enabled:     false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	resp := twofactor.SetupResponse{
		Method:      req.Method,
		BackupCodes: backupCodes,
	}

	if method == twofactor.MethodAuthenticator {
		secret, err := generateSecret()
		if err != nil {
			return twofactor.SetupResponse{}, err
		}
		tfa.Secret = &secret

		account := req.UserID
		if emp, err := s.employeeRepo.GetByID(ctx, req.UserID); err == nil {
			account = emp.Email
		}
		u := otpauthURL(issuer, account, secret)
		resp.OTPAuthURL = &u
	}

	// Replace a pending setup from an earlier attempt.
	if hasExisting {
		if err := s.twoFactorRepo.Delete(ctx, req.UserID); err != nil {
			return twofactor.SetupResponse{}, fmt.Errorf("failed to reset pending setup: %w", err)
		}
	}

	if _, err := s.twoFactorRepo.Create(ctx, tfa); err != nil {
		return twofactor.SetupResponse{}, fmt.Errorf("failed to store two-factor setup: %w", err)
	}

	if method != twofactor.MethodAuthenticator {
		if err := s.sendCode(ctx, tfa); err != nil {
			return twofactor.SetupResponse{}, err
		}
	}

	return resp, nil
}

func (s *TwoFactorServiceImpl) VerifySetup(ctx context.Context, req twofactor.VerifyRequest) (twofactor.StatusResponse, error) {
	if err := req.Validate(); err != nil {
		return twofactor.StatusResponse{}, err
	}

	tfa, err := s.twoFactorRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return twofactor.StatusResponse{}, twofactor.ErrSetupNotStarted
	}
	if tfa.Enabled {
		return twofactor.StatusResponse{}, twofactor.ErrAlreadyEnabled
	}

	ok, err := s.checkCode(ctx, tfa, req.Code)
	if err != nil {
		return twofactor.StatusResponse{}, err
	}
	if !ok {
		return twofactor.StatusResponse{}, twofactor.ErrInvalidCode
	}

	now := s.clock.Now()
	tfa.Enabled = true
	tfa.VerifiedAt = &now
	tfa.UpdatedAt = now
	if err := s.twoFactorRepo.Update(ctx, tfa); err != nil {
		return twofactor.StatusResponse{}, fmt.Errorf("failed to enable two-factor: %w", err)
	}

	return twofactor.ToStatusResponse(tfa), nil
}

func (s *TwoFactorServiceImpl) SendCode(ctx context.Context, userID string) error {
	tfa, err := s.twoFactorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return twofactor.ErrNotEnabled
	}
	if !tfa.Enabled {
		return twofactor.ErrNotEnabled
	}
	if tfa.Method == twofactor.MethodAuthenticator {
		// Authenticator codes are generated on the device.
		return nil
	}
	return s.sendCode(ctx, tfa)
}

func (s *TwoFactorServiceImpl) ValidateLogin(ctx context.Context, req twofactor.VerifyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	tfa, err := s.twoFactorRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return twofactor.ErrNotEnabled
	}
	if !tfa.Enabled {
		return twofactor.ErrNotEnabled
	}

	ok, err := s.checkCode(ctx, tfa, req.Code)
	if err != nil {
		return err
	}
	if !ok {
		consumed, err := s.consumeBackupCode(&tfa, req.Code)
		if err != nil {
			return err
		}
		if !consumed {
			return twofactor.ErrInvalidCode
		}
	}

	now := s.clock.Now()
	tfa.LastUsedAt = &now
	tfa.UpdatedAt = now
	if err := s.twoFactorRepo.Update(ctx, tfa); err != nil {
		return fmt.Errorf("failed to record two-factor use: %w", err)
	}
	return nil
}

func (s *TwoFactorServiceImpl) Disable(ctx context.Context, userID string) error {
	if _, err := s.twoFactorRepo.GetByUserID(ctx, userID); err != nil {
		return twofactor.ErrNotEnabled
	}
	if err := s.codeStore.Delete(ctx, userID); err != nil && !errors.Is(err, twofactor.ErrCodeNotFound) {
		return fmt.Errorf("failed to clear pending code: %w", err)
	}
	return s.twoFactorRepo.Delete(ctx, userID)
}

func (s *TwoFactorServiceImpl) Status(ctx context.Context, userID string) (twofactor.StatusResponse, error) {
	tfa, err := s.twoFactorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return twofactor.StatusResponse{Enabled: false}, nil
	}
	return twofactor.ToStatusResponse(tfa), nil
}

// sendCode stores a fresh numeric code with a TTL and emails it. SMS
// delivery reuses the email channel until a gateway is wired.
func (s *TwoFactorServiceImpl) sendCode(ctx context.Context, tfa twofactor.TwoFactorAuth) error {
	code, err := generateNumericCode()
	if err != nil {
		return err
	}
	if err := s.codeStore.Put(ctx, tfa.UserID, code, codeTTL); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, tfa.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve recipient: %w", err)
	}
	if err := s.emailService.SendTwoFactorCode(emp.Email, code); err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}
	return nil
}

// checkCode verifies against the pending stored code or, for the
// authenticator method, the TOTP window. A matching stored code is
// consumed.
func (s *TwoFactorServiceImpl) checkCode(ctx context.Context, tfa twofactor.TwoFactorAuth, code string) (bool, error) {
	if tfa.Method == twofactor.MethodAuthenticator {
		if tfa.Secret == nil {
			return false, twofactor.ErrSetupNotStarted
		}
		return verifyTOTP(*tfa.Secret, code, s.clock.Now()), nil
	}

	stored, err := s.codeStore.Get(ctx, tfa.UserID)
	if err != nil {
		if errors.Is(err, twofactor.ErrCodeNotFound) {
			return false, nil
		}
		return false, err
	}
	if stored != code {
		return false, nil
	}
	if err := s.codeStore.Delete(ctx, tfa.UserID); err != nil && !errors.Is(err, twofactor.ErrCodeNotFound) {
		return false, err
	}
	return true, nil
}

// consumeBackupCode removes a matching backup code. Each code works
// exactly once. Stored codes are bcrypt hashes.
func (s *TwoFactorServiceImpl) consumeBackupCode(tfa *twofactor.TwoFactorAuth, code string) (bool, error) {
	for i, backup := range tfa.BackupCodes {
		if bcrypt.CompareHashAndPassword([]byte(backup), []byte(code)) == nil {
			tfa.BackupCodes = append(tfa.BackupCodes[:i], tfa.BackupCodes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func hashBackupCodes(codes []string) ([]string, error) {
	hashed := make([]string, 0, len(codes))
	for _, code := range codes {
		h, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash backup code: %w", err)
		}
		hashed = append(hashed, string(h))
	}
	return hashed, nil
}

func generateNumericCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func generateBackupCodes() ([]string, error) {
	codes := make([]string, 0, backupCodeCount)
	for i := 0; i < backupCodeCount; i++ {
		buf := make([]byte, 5)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("failed to generate backup code: %w", err)
		}
		codes = append(codes, hex.EncodeToString(buf))
	}
	return codes, nil
}
