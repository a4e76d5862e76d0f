package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/relato-cidadao/relato-cidadao-be/model"
	"github.com/sirupsen/logrus"
)

// ErrUpstream signals that the IBGE directory could not be reached or
// returned a malformed response.
var ErrUpstream = errors.New("diretório de localidades indisponível")

var upstreamFailures = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "ibge_upstream_failures",
	Help: "Total number of failed IBGE directory requests",
})

func init() {
	prometheus.MustRegister(upstreamFailures)
}

const slowUpstreamThreshold = 2 * time.Second

type estadosSnapshot struct {
	estados   []*model.Estado
	fetchedAt time.Time
}

type cidadesSnapshot struct {
	cidades   []*model.Cidade
	fetchedAt time.Time
}

// GeographyService is the facade over the IBGE localidades directory. It
// keeps per-process TTL snapshots of the state and city lists so the
// per-post name resolution on listings does not hit the upstream once per
// post; responses are unchanged by the cache.
type GeographyService struct {
	client  *http.Client
	baseURL string
	ttl     time.Duration
	logger  *logrus.Logger

	mu      sync.Mutex
	estados *estadosSnapshot
	cidades map[string]*cidadesSnapshot
}

func NewGeographyService(baseURL string, timeout, cacheTTL time.Duration, logger *logrus.Logger) *GeographyService {
	return &GeographyService{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		ttl:     cacheTTL,
		logger:  logger,
		cidades: make(map[string]*cidadesSnapshot),
	}
}

// Estados lists the Brazilian states in the order the directory returns them.
func (gs *GeographyService) Estados(ctx context.Context) ([]*model.Estado, error) {
	gs.mu.Lock()
	if gs.estados != nil && time.Since(gs.estados.fetchedAt) < gs.ttl {
		estados := gs.estados.estados
		gs.mu.Unlock()
		return estados, nil
	}
	gs.mu.Unlock()

	var estados []*model.Estado
	if err := gs.getJSON(ctx, fmt.Sprintf("%s/estados", gs.baseURL), &estados); err != nil {
		return nil, err
	}

	gs.mu.Lock()
	gs.estados = &estadosSnapshot{estados: estados, fetchedAt: time.Now()}
	gs.mu.Unlock()
	return estados, nil
}

// Cidades lists the cities of one state. chave is either a numeric IBGE
// state id or a UF abbreviation; the upstream accepts both path forms.
func (gs *GeographyService) Cidades(ctx context.Context, chave string) ([]*model.Cidade, error) {
	gs.mu.Lock()
	if snapshot, ok := gs.cidades[chave]; ok && time.Since(snapshot.fetchedAt) < gs.ttl {
		cidades := snapshot.cidades
		gs.mu.Unlock()
		return cidades, nil
	}
	gs.mu.Unlock()

	var cidades []*model.Cidade
	if err := gs.getJSON(ctx, fmt.Sprintf("%s/estados/%s/municipios", gs.baseURL, chave), &cidades); err != nil {
		return nil, err
	}

	gs.mu.Lock()
	gs.cidades[chave] = &cidadesSnapshot{cidades: cidades, fetchedAt: time.Now()}
	gs.mu.Unlock()
	return cidades, nil
}

// EstadoNome resolves a state name by id. Misses and upstream failures
// degrade to "" so read paths never fail on enrichment.
func (gs *GeographyService) EstadoNome(ctx context.Context, estadoId int64) string {
	estados, err := gs.Estados(ctx)
	if err != nil {
		gs.logger.WithError(err).WithField("estadoId", estadoId).
			Warn("falha ao resolver nome do estado")
		return ""
	}
	for _, estado := range estados {
		if estado.Id == estadoId {
			return estado.Nome
		}
	}
	return ""
}

// CidadeNome resolves a city name within a state. Same degradation rules as
// EstadoNome.
func (gs *GeographyService) CidadeNome(ctx context.Context, estadoId, cidadeId int64) string {
	cidades, err := gs.Cidades(ctx, strconv.FormatInt(estadoId, 10))
	if err != nil {
		gs.logger.WithError(err).WithField("cidadeId", cidadeId).
			Warn("falha ao resolver nome da cidade")
		return ""
	}
	for _, cidade := range cidades {
		if cidade.Id == cidadeId {
			return cidade.Nome
		}
	}
	return ""
}

func (gs *GeographyService) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ErrUpstream
	}

	start := time.Now()
	res, err := gs.client.Do(req)
	if err != nil {
		upstreamFailures.Inc()
		gs.logger.WithError(err).WithField("url", url).Error("erro ao consultar o IBGE")
		return ErrUpstream
	}
	defer res.Body.Close()

	if duration := time.Since(start); duration > slowUpstreamThreshold {
		gs.logger.WithFields(logrus.Fields{
			"url":      url,
			"duration": duration,
		}).Warn("consulta lenta ao IBGE")
	}

	if res.StatusCode != http.StatusOK {
		upstreamFailures.Inc()
		gs.logger.WithFields(logrus.Fields{
			"url":    url,
			"status": res.StatusCode,
		}).Error("resposta inesperada do IBGE")
		return ErrUpstream
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		upstreamFailures.Inc()
		gs.logger.WithError(err).WithField("url", url).Error("resposta ilegível do IBGE")
		return ErrUpstream
	}
	return nil
}
