package entity

// Kind tags an entity type for the record factory.
type Kind string

const (
	KindUser    Kind = "user"
	KindArticle Kind = "article"
)

// IsValid reports whether k names a known entity type.
func (k Kind) IsValid() bool {
	switch k {
	case KindUser, KindArticle:
		return true
	default:
		return false
	}
}

// Table returns the table that stores records of kind k.
func (k Kind) Table() string {
	switch k {
	case KindUser:
		return "users"
	case KindArticle:
		return "articles"
	default:
		return ""
	}
}
