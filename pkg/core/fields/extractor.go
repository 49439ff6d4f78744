package fields

import (
	"reportlens/pkg/models"
)

// Extract applies every rule in the set against the full text and returns
// the outcome for every configured field. Matching is pure string work: no
// side effects, and identical text always yields identical output.
func (rs *RuleSet) Extract(text string) models.FieldMap {
	info := make(models.FieldMap, len(rs.Rules))
	for _, rule := range rs.Rules {
		m := rule.Pattern.FindStringSubmatch(text)
		if m == nil || len(m) < 2 {
			info[rule.Field] = models.FieldValue{}
			continue
		}
		value := m[1]
		if rule.Transform != nil {
			value = rule.Transform(value)
		}
		info[rule.Field] = models.FieldValue{Value: value, Found: true}
	}
	return info
}

// EmptyMap returns a FieldMap with every configured field NotFound. The
// orchestrator uses it for the unreadable-document short circuit.
func (rs *RuleSet) EmptyMap() models.FieldMap {
	info := make(models.FieldMap, len(rs.Rules))
	for _, rule := range rs.Rules {
		info[rule.Field] = models.FieldValue{}
	}
	return info
}

// FieldNames lists the configured field names in rule order.
func (rs *RuleSet) FieldNames() []string {
	names := make([]string, 0, len(rs.Rules))
	for _, rule := range rs.Rules {
		names = append(names, rule.Field)
	}
	return names
}
