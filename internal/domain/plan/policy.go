package plan

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// Policy responde preguntas de cuota sobre los planes de suscripción.
// Es configuración pura: sin efectos, validada una vez al construirse.
type Policy struct {
	plans map[string]entity.PlanConfig
}

// NewPolicy valida que los límites sean monótonamente no decrecientes en el
// orden de planes (un plan superior nunca tiene un límite estrictamente menor,
// con Unlimited contando como infinito). Una violación es un error de
// configuración: el proceso no debe arrancar.
func NewPolicy(plans map[string]entity.PlanConfig) (*Policy, error) {
	for _, id := range entity.PlanOrder {
		if _, ok := plans[id]; !ok {
			return nil, fmt.Errorf("plan: falta configuración del plan %q", id)
		}
	}
	for i := 1; i < len(entity.PlanOrder); i++ {
		lower := plans[entity.PlanOrder[i-1]].Limits
		higher := plans[entity.PlanOrder[i]].Limits
		if err := checkMonotonic(entity.PlanOrder[i-1], entity.PlanOrder[i], lower, higher); err != nil {
			return nil, err
		}
	}
	return &Policy{plans: plans}, nil
}

func checkMonotonic(lowerID, higherID string, lower, higher entity.PlanLimits) error {
	pairs := []struct {
		name string
		lo   int
		hi   int
	}{
		{"max_users", lower.MaxUsers, higher.MaxUsers},
		{"max_servers", lower.MaxServers, higher.MaxServers},
		{"max_storage_gb", lower.MaxStorageGB, higher.MaxStorageGB},
		{"max_modules", lower.MaxModules, higher.MaxModules},
	}
	for _, p := range pairs {
		if p.hi == entity.Unlimited {
			continue
		}
		if p.lo == entity.Unlimited || p.lo > p.hi {
			return fmt.Errorf("plan: límite %s del plan %s (%d) es menor que el del plan %s (%d)",
				p.name, higherID, p.hi, lowerID, p.lo)
		}
	}
	return nil
}

// LimitsFor devuelve los límites del plan. Un planID desconocido es un error
// de programación (los planes válidos están fijos en entity.PlanOrder).
func (p *Policy) LimitsFor(planID string) entity.PlanLimits {
	cfg, ok := p.plans[planID]
	if !ok {
		panic(fmt.Sprintf("plan: plan desconocido %q", planID))
	}
	return cfg.Limits
}

// ConfigFor devuelve la configuración completa del plan (límites, soporte, precio).
func (p *Policy) ConfigFor(planID string) entity.PlanConfig {
	cfg, ok := p.plans[planID]
	if !ok {
		panic(fmt.Sprintf("plan: plan desconocido %q", planID))
	}
	return cfg
}

// Known informa si el id de plan está configurado.
func (p *Policy) Known(planID string) bool {
	_, ok := p.plans[planID]
	return ok
}

// CanAcquireOne informa si el tenant puede sumar una unidad más del recurso:
// true si el límite es Unlimited o si currentCount está por debajo del tope.
func (p *Policy) CanAcquireOne(planID string, kind entity.ResourceKind, currentCount int) bool {
	limit := p.limitFor(planID, kind)
	return limit == entity.Unlimited || currentCount < limit
}

// UsagePercentage devuelve el porcentaje de uso (0..100) de current sobre limit.
// Con límite Unlimited devuelve 0; el resultado se recorta a 100.
func UsagePercentage(current, limit int) int {
	if limit == entity.Unlimited || limit < 0 {
		return 0
	}
	if current <= 0 {
		return 0
	}
	pct := current * 100 / limit
	if pct > 100 {
		return 100
	}
	return pct
}

func (p *Policy) limitFor(planID string, kind entity.ResourceKind) int {
	limits := p.LimitsFor(planID)
	switch kind {
	case entity.ResourceUsers:
		return limits.MaxUsers
	case entity.ResourceServers:
		return limits.MaxServers
	case entity.ResourceStorageGB:
		return limits.MaxStorageGB
	case entity.ResourceModules:
		return limits.MaxModules
	default:
		panic(fmt.Sprintf("plan: recurso desconocido %q", kind))
	}
}

// DefaultPolicy es el catálogo comercial fijo de la plataforma.
// Unlimited (0) = sin tope.
func DefaultPolicy() *Policy {
	p, err := NewPolicy(map[string]entity.PlanConfig{
		entity.PlanBasic: {
			ID:           entity.PlanBasic,
			Limits:       entity.PlanLimits{MaxUsers: 5, MaxServers: 1, MaxStorageGB: 5, MaxModules: 3},
			SupportTier:  "community",
			PriceMonthly: decimal.NewFromInt(29),
		},
		entity.PlanStandard: {
			ID:           entity.PlanStandard,
			Limits:       entity.PlanLimits{MaxUsers: 20, MaxServers: 3, MaxStorageGB: 50, MaxModules: 6},
			SupportTier:  "standard",
			PriceMonthly: decimal.NewFromInt(79),
		},
		entity.PlanPremium: {
			ID:           entity.PlanPremium,
			Limits:       entity.PlanLimits{MaxUsers: 100, MaxServers: 10, MaxStorageGB: 500, MaxModules: 10},
			SupportTier:  "priority",
			PriceMonthly: decimal.NewFromInt(199),
		},
		entity.PlanEnterprise: {
			ID:           entity.PlanEnterprise,
			Limits:       entity.PlanLimits{MaxUsers: entity.Unlimited, MaxServers: entity.Unlimited, MaxStorageGB: entity.Unlimited, MaxModules: entity.Unlimited},
			SupportTier:  "dedicated",
			PriceMonthly: decimal.NewFromInt(499),
		},
	})
	if err != nil {
		panic(err)
	}
	return p
}
