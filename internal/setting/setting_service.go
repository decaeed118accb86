package setting

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	settingerrors "github.com/bruno-marques98/CoreCrewApp/internal/setting/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const listFlightKey = "settings:list"

//go:generate mockgen -source=setting_service.go -destination=mock/setting_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]SettingResponse, error)
	GetByID(ctx context.Context, id uint) (SettingResponse, error)
	Create(ctx context.Context, req SettingRequest) (SettingResponse, error)
	Update(ctx context.Context, id uint, req SettingRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("setting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("setting.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// GetAll shares one query between callers that arrive while it is running.
func (s *service) GetAll(ctx context.Context) ([]SettingResponse, error) {
	v, err, shared := s.sf.Do(listFlightKey, func() (any, error) {
		return s.repo.FindAll(ctx)
	})
	if err != nil {
		s.logger.Error("list settings failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	s.logger.Debug("list settings", zap.Bool("shared", shared))
	return mapToListResponse(v.([]domain.Setting)), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (SettingResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SettingResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req SettingRequest) (SettingResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create setting requested", zap.String("request_id", rid), zap.String("name", req.Name))

	row, err := toEntity(0, req, 1)
	if err != nil {
		return SettingResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create setting failed", zap.String("request_id", rid), zap.Error(err))
		return SettingResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create setting success", zap.String("request_id", rid), zap.Uint("setting_id", row.SettingID))
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id uint, req SettingRequest) error {
	if req.SettingID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update setting requested", zap.String("request_id", rid), zap.Uint("setting_id", id))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := crud.CheckVersion(req.Version, current.Version); err != nil {
			return err
		}

		next, err := toEntity(id, req, current.Version+1)
		if err != nil {
			return err
		}
		n, err := qtx.Update(ctx, next, current.Version)
		if err != nil {
			return err
		}
		if n == 0 {
			return crud.ResolveNoRows(qtx.Exists(ctx, id))
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("update setting failed", zap.String("request_id", rid), zap.Uint("setting_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update setting success", zap.String("request_id", rid), zap.Uint("setting_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	rid := contextutil.GetRequestID(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.repo.WithTx(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return settingerrors.ErrSettingNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete setting failed", zap.String("request_id", rid), zap.Uint("setting_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete setting success", zap.String("request_id", rid), zap.Uint("setting_id", id))
	return nil
}

func toEntity(id uint, req SettingRequest, version int64) (*domain.Setting, error) {
	return &domain.Setting{
		SettingID:   id,
		Name:        req.Name,
		Value:       req.Value,
		Type:        req.Type,
		Description: req.Description,
		Version:     version,
	}, nil
}

func mapToResponse(st domain.Setting) SettingResponse {
	return SettingResponse{
		SettingID:   st.SettingID,
		Name:        st.Name,
		Value:       st.Value,
		Type:        st.Type,
		Description: st.Description,
		Version:     st.Version,
	}
}

func mapToListResponse(rows []domain.Setting) []SettingResponse {
	res := make([]SettingResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
