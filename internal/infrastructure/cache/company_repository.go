package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
	"github.com/jhoicas/Parqueadero-api/pkg/logger"
)

const companyKeyPrefix = "parqueadero:company:"

var _ repository.CompanyRepository = (*CompanyRepository)(nil)

// CompanyRepository decora un repository.CompanyRepository con caché read-through de GetByID.
// Las escrituras van siempre al repositorio y luego invalidan la clave. Un fallo de la caché
// se registra y se ignora: la fuente de verdad sigue siendo el repositorio.
type CompanyRepository struct {
	next  repository.CompanyRepository
	store Store
	ttl   time.Duration
	log   *logger.Logger
}

// NewCompanyRepository construye el decorador.
func NewCompanyRepository(next repository.CompanyRepository, store Store, ttl time.Duration, log *logger.Logger) *CompanyRepository {
	return &CompanyRepository{next: next, store: store, ttl: ttl, log: log}
}

func companyKey(id string) string {
	return companyKeyPrefix + id
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	key := companyKey(id)
	data, err := r.store.Get(ctx, key)
	switch {
	case err == nil:
		var c entity.Company
		if uerr := json.Unmarshal(data, &c); uerr == nil {
			return &c, nil
		}
		r.log.Warn().Str("key", key).Msg("entrada de caché corrupta, se descarta")
	case !errors.Is(err, ErrMiss):
		r.log.Warn().Err(err).Str("key", key).Msg("caché no disponible")
	}

	c, err := r.next.GetByID(ctx, id)
	if err != nil || c == nil {
		return c, err
	}
	if data, merr := json.Marshal(c); merr == nil {
		if serr := r.store.Set(ctx, key, data, r.ttl); serr != nil {
			r.log.Warn().Err(serr).Str("key", key).Msg("no se pudo guardar en caché")
		}
	}
	return c, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	return r.next.Create(ctx, company)
}

func (r *CompanyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	return r.next.List(ctx)
}

func (r *CompanyRepository) Update(ctx context.Context, company *entity.Company) error {
	if err := r.next.Update(ctx, company); err != nil {
		return err
	}
	r.invalidate(ctx, company.ID)
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CompanyRepository) invalidate(ctx context.Context, id string) {
	if err := r.store.Del(ctx, companyKey(id)); err != nil {
		r.log.Warn().Err(err).Str("company_id", id).Msg("no se pudo invalidar caché")
	}
}
