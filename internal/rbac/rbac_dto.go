package rbac

type PoliciesResponse struct {
	Policies  []Policy   `json:"policies"`
	Groupings []Grouping `json:"groupings"`
}
