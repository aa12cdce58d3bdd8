package impl

import (
	"context"
	"log/slog"

	deliverycontext "passmanager/internal/delivery/context"
	"passmanager/internal/domain/entity"
	domainerrors "passmanager/internal/domain/errors"
	"passmanager/internal/domain/repository"
	"passmanager/internal/domain/service"
	"passmanager/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// passwordService implements the PasswordUsecase interface.
type passwordService struct {
	entryRepo   repository.ServicePasswordRepository
	qrService   service.QRCodeService
	credentials *credentialChecker
	logger      *slog.Logger
}

// PasswordServiceParams holds dependencies for PasswordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	EntryRepo repository.ServicePasswordRepository
	Hasher    service.PasswordHasher
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewPasswordService creates the password manager service.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	return &passwordService{
		entryRepo:   params.EntryRepo,
		qrService:   params.QRService,
		credentials: newCredentialChecker(params.UserRepo, params.Hasher),
		logger:      params.Logger,
	}
}

func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *passwordService) authenticate(ctx context.Context, creds usecase.Credentials) (*entity.User, error) {
	user, err := srv.credentials.authenticate(ctx, creds.Username, creds.Password)
	if err != nil {
		srv.log(ctx).Warn("Credential check failed", slog.String("username", creds.Username), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}

// findByServiceName maps the repository miss onto the domain not-found error.
func (srv *passwordService) findByServiceName(ctx context.Context, username, serviceName string) (*entity.ServicePassword, error) {
	entry, err := srv.entryRepo.FindByUsernameAndServiceName(ctx, username, serviceName)
	if errors.Is(err, repository.ErrServicePasswordNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrServicePasswordNotFound, "no entry for service %q", serviceName)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service password")
	}

	return entry, nil
}

// AddPassword stores a new entry owned by the authenticated user.
func (srv *passwordService) AddPassword(ctx context.Context, creds usecase.Credentials, input *usecase.AddPasswordInput) (*entity.ServicePassword, error) {
	user, err := srv.authenticate(ctx, creds)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add password")
	}

	entry := &entity.ServicePassword{
		Username:    user.Username,
		ServiceName: input.ServiceName,
		Password:    input.ServicePassword,
	}
	if err := srv.entryRepo.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to store service password")
	}

	srv.log(ctx).Debug("Service password added", slog.String("username", user.Username), slog.String("service", entry.ServiceName))

	return entry, nil
}

// GetPasswords lists every entry of the authenticated user.
func (srv *passwordService) GetPasswords(ctx context.Context, creds usecase.Credentials) ([]*entity.ServicePassword, error) {
	user, err := srv.authenticate(ctx, creds)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get passwords")
	}

	entries, err := srv.entryRepo.FindByUsername(ctx, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service passwords")
	}
	if entries == nil {
		entries = []*entity.ServicePassword{}
	}

	return entries, nil
}

// GetPassword returns the entry of one service.
func (srv *passwordService) GetPassword(ctx context.Context, creds usecase.Credentials, serviceName string) (*entity.ServicePassword, error) {
	user, err := srv.authenticate(ctx, creds)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get password")
	}

	return srv.findByServiceName(ctx, user.Username, serviceName)
}

// UpdatePassword overwrites the entry with the given ID if the user owns it.
func (srv *passwordService) UpdatePassword(ctx context.Context, creds usecase.Credentials, entryID uuid.UUID, input *usecase.UpdatePasswordInput) (*entity.ServicePassword, error) {
	user, err := srv.authenticate(ctx, creds)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update password")
	}

	entry, err := srv.entryRepo.FindByIDAndUsername(ctx, entryID, user.Username)
	if errors.Is(err, repository.ErrServicePasswordNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrServicePasswordNotFound, "no entry with id %s", entryID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service password")
	}

	entry.ServiceName = input.ServiceName
	entry.Password = input.ServicePassword

	return srv.persistUpdate(ctx, entry)
}

// UpdatePasswordByServiceName replaces the stored password of one service.
func (srv *passwordService) UpdatePasswordByServiceName(ctx context.Context, creds usecase.Credentials, serviceName, servicePassword string) (*entity.ServicePassword, error) {
	user, err := srv.authenticate(ctx, creds)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update password")
	}

	entry, err := srv.findByServiceName(ctx, user.Username, serviceName)
	if err != nil {
		return nil, err
	}

	entry.Password = servicePassword

	return srv.persistUpdate(ctx, entry)
}

func (srv *passwordService) persistUpdate(ctx context.Context, entry *entity.ServicePassword) (*entity.ServicePassword, error) {
	err := srv.entryRepo.Update(ctx, entry)
	if errors.Is(err, repository.ErrServicePasswordNotFound) {
		return nil, errors.Wrap(domainerrors.ErrServicePasswordNotFound, "entry disappeared during update")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist service password")
	}

	srv.log(ctx).Debug("Service password updated", slog.String("username", entry.Username), slog.String("service", entry.ServiceName))

	return entry, nil
}

// DeletePassword removes the entry of one service.
func (srv *passwordService) DeletePassword(ctx context.Context, creds usecase.Credentials, serviceName string) error {
	user, err := srv.authenticate(ctx, creds)
	if err != nil {
		return errors.Wrap(err, "failed to delete password")
	}

	if _, err := srv.findByServiceName(ctx, user.Username, serviceName); err != nil {
		return err
	}

	err = srv.entryRepo.DeleteByUsernameAndServiceName(ctx, user.Username, serviceName)
	if errors.Is(err, repository.ErrServicePasswordNotFound) {
		return errors.Wrap(domainerrors.ErrServicePasswordNotFound, "entry disappeared during deletion")
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete service password")
	}

	srv.log(ctx).Debug("Service password deleted", slog.String("username", user.Username), slog.String("service", serviceName))

	return nil
}

// ExportPasswordQR renders one entry as a PNG QR code.
func (srv *passwordService) ExportPasswordQR(ctx context.Context, creds usecase.Credentials, serviceName string) ([]byte, error) {
	user, err := srv.authenticate(ctx, creds)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export password")
	}

	entry, err := srv.findByServiceName(ctx, user.Username, serviceName)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateEntryQR(entry)
	if err != nil {
		srv.log(ctx).Error("Failed to render QR code", slog.String("service", serviceName), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrQRCodeFailed.WithDetails(err.Error()), "failed to export password")
	}

	return png, nil
}
