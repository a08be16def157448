package permissions

import (
	"ngtax/tax-engine/internal/logging"
	"ngtax/tax-engine/internal/taxerror"
)

// Evaluator answers permission questions for both taxonomies.
//
// Unknown roles resolve to the viewer role of their taxonomy. Unknown sections,
// actions and capabilities are denied and logged as warnings. In strict mode
// those caller mistakes are surfaced instead: the Check methods return an
// *taxerror.UnknownNameError and the boolean methods panic with it.
type Evaluator struct {
	strict bool
	logger logging.Logger
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(strict bool, logger logging.Logger) *Evaluator {
	return &Evaluator{
		strict: strict,
		logger: logging.OrDefault(logger),
	}
}

// Strict reports whether the evaluator runs in diagnostic mode.
func (e *Evaluator) Strict() bool {
	return e.strict
}

// CanAccess reports whether role may perform action on section.
func (e *Evaluator) CanAccess(role SettingsRole, section Section, action Action) bool {
	allowed, err := e.CheckAccess(role, section, action)
	if err != nil {
		panic(err)
	}
	return allowed
}

// CheckAccess is CanAccess with strict-mode failures returned as errors.
// Outside strict mode the error is always nil.
func (e *Evaluator) CheckAccess(role SettingsRole, section Section, action Action) (bool, error) {
	role = e.resolveSettingsRole(role)

	if !section.IsValid() {
		return false, e.unknown("section", string(section))
	}
	if !action.IsValid() {
		return false, e.unknown("action", string(action))
	}

	allowed := lookupAccess(role, section).Allows(action)
	e.logger.Debug("Settings access evaluated",
		logging.Field{Key: logging.FieldRole, Value: string(role)},
		logging.Field{Key: logging.FieldSection, Value: string(section)},
		logging.Field{Key: logging.FieldAction, Value: string(action)},
		logging.Field{Key: logging.FieldStatus, Value: allowed})
	return allowed, nil
}

// SectionAccess returns the full access entry role holds on section.
// Unknown sections yield no access.
func (e *Evaluator) SectionAccess(role SettingsRole, section Section) Access {
	return lookupAccess(e.resolveSettingsRole(role), section)
}

// Capabilities returns the capability record of role.
func (e *Evaluator) Capabilities(role TeamRole) CapabilityRecord {
	return teamTable[e.resolveTeamRole(role)]
}

// HasCapability reports whether role holds capability.
func (e *Evaluator) HasCapability(role TeamRole, capability Capability) bool {
	has, err := e.CheckCapability(role, capability)
	if err != nil {
		panic(err)
	}
	return has
}

// CheckCapability is HasCapability with strict-mode failures returned as errors.
func (e *Evaluator) CheckCapability(role TeamRole, capability Capability) (bool, error) {
	role = e.resolveTeamRole(role)

	if !capability.IsValid() {
		return false, e.unknown("capability", string(capability))
	}

	has := teamTable[role].Has(capability)
	e.logger.Debug("Team capability evaluated",
		logging.Field{Key: logging.FieldRole, Value: string(role)},
		logging.Field{Key: logging.FieldCapability, Value: string(capability)},
		logging.Field{Key: logging.FieldStatus, Value: has})
	return has, nil
}

func (e *Evaluator) resolveSettingsRole(role SettingsRole) SettingsRole {
	if role.IsValid() {
		return role
	}
	e.logger.Warn("Unknown settings role, using viewer",
		logging.Field{Key: logging.FieldRole, Value: string(role)})
	return SettingsViewer
}

func (e *Evaluator) resolveTeamRole(role TeamRole) TeamRole {
	if role.IsValid() {
		return role
	}
	e.logger.Warn("Unknown team role, using viewer",
		logging.Field{Key: logging.FieldRole, Value: string(role)})
	return TeamViewer
}

// unknown logs a caller mistake and returns the strict-mode error, or nil.
func (e *Evaluator) unknown(kind, name string) error {
	err := &taxerror.UnknownNameError{Kind: kind, Name: name}
	if e.strict {
		return err
	}
	e.logger.WithError(err).Warn("Permission denied for unknown name",
		logging.Field{Key: logging.FieldReason, Value: kind})
	return nil
}
