package entitlement

// Reason código legible por máquina del motivo de un rechazo de política.
type Reason string

const (
	ReasonUnknownModule       Reason = "UNKNOWN_MODULE"
	ReasonAlreadyEnabled      Reason = "ALREADY_ENABLED"
	ReasonNotEnabled          Reason = "NOT_ENABLED"
	ReasonQuotaExceeded       Reason = "QUOTA_EXCEEDED"
	ReasonMissingDependencies Reason = "MISSING_DEPENDENCIES"
	ReasonDependentModules    Reason = "DEPENDENT_MODULES"
)

// Decision es el resultado estructurado de una verificación de política.
// Los rechazos son resultados esperados, no errores: llevan el motivo y el
// detalle suficiente (ids de dependencias faltantes o de módulos dependientes)
// para que el llamador se autocorrija.
type Decision struct {
	OK                  bool     `json:"ok"`
	Reason              Reason   `json:"reason,omitempty"`
	MissingDependencies []string `json:"missing_dependencies,omitempty"`
	Dependents          []string `json:"dependents,omitempty"`
}

// Allowed es la decisión afirmativa.
func Allowed() Decision {
	return Decision{OK: true}
}

// Rejected construye un rechazo simple con motivo.
func Rejected(reason Reason) Decision {
	return Decision{OK: false, Reason: reason}
}
