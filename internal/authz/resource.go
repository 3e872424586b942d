package authz

// Resource énumère les types de ressources protégées par propriété.
// Un type fermé plutôt qu'une table indexée par chaîne: ajouter une
// ressource force à compléter le switch de CheckOwnership.
type Resource int

const (
	ResourceUser Resource = iota
	ResourcePost
	ResourceComment
)

func (r Resource) String() string {
	switch r {
	case ResourceUser:
		return "user"
	case ResourcePost:
		return "post"
	case ResourceComment:
		return "comment"
	default:
		return "unknown"
	}
}
