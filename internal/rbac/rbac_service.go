package rbac

import (
	"sync"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	Policies() PoliciesResponse
}

type service struct {
	enforcer  *casbin.Enforcer
	policies  []Policy
	groupings []Grouping
	mu        sync.RWMutex
	logger    *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, policies []Policy, groupings []Grouping, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	s := &service{
		enforcer:  enforcer,
		policies:  policies,
		groupings: groupings,
		logger:    l,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, g := range s.groupings {
		if _, err := s.enforcer.AddGroupingPolicy(g.Role, g.Parent); err != nil {
			return err
		}
	}
	for _, p := range s.policies {
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policies loaded",
		zap.Int("policies", len(s.policies)),
		zap.Int("groupings", len(s.groupings)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	if req.Role == "" {
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Policies() PoliciesResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	policies := make([]Policy, len(s.policies))
	copy(policies, s.policies)
	groupings := make([]Grouping, len(s.groupings))
	copy(groupings, s.groupings)
	return PoliciesResponse{Policies: policies, Groupings: groupings}
}
