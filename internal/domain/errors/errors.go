package errors

import "errors"

// Kind classifica um erro de domínio; a camada HTTP traduz cada Kind em status
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuth
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Business errors
// Nota: Message é um message ID para i18n.
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrRegisterFieldsRequired = &DomainError{Kind: KindValidation, Message: "error.register_fields_required"}
	ErrLoginFieldsRequired    = &DomainError{Kind: KindValidation, Message: "error.login_fields_required"}
	ErrPostFieldsRequired     = &DomainError{Kind: KindValidation, Message: "error.post_fields_required"}
	ErrInvalidBody            = &DomainError{Kind: KindValidation, Message: "error.invalid_body"}
	ErrInvalidFields          = &DomainError{Kind: KindValidation, Message: "error.invalid_fields"}

	ErrUserAlreadyExists = &DomainError{Kind: KindConflict, Message: "error.user_already_exists"}
	ErrNameTaken         = &DomainError{Kind: KindConflict, Message: "error.name_taken"}
	ErrEmailTaken        = &DomainError{Kind: KindConflict, Message: "error.email_taken"}

	ErrUserNotFound   = &DomainError{Kind: KindNotFound, Message: "error.user_not_found"}
	ErrAuthorNotFound = &DomainError{Kind: KindNotFound, Message: "error.author_not_found"}
	ErrPostNotFound   = &DomainError{Kind: KindNotFound, Message: "error.post_not_found"}

	// Mesma mensagem para usuário inexistente e senha errada
	ErrInvalidCredentials = &DomainError{Kind: KindAuth, Message: "error.invalid_credentials"}
)

// Message IDs para falhas de persistência
const (
	MsgUpdateUserFailed = "error.update_user_failed"
	MsgUpdatePostFailed = "error.update_post_failed"
	MsgStoreFailed      = "error.internal.detail"
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeInternal     = "/problems/internal-error"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Persistence envolve uma falha inesperada do store
func Persistence(message string, err error) *DomainError {
	return &DomainError{Kind: KindPersistence, Message: message, Err: err}
}

// KindOf retorna o Kind do primeiro DomainError na cadeia de err
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// MessageOf retorna o message ID do primeiro DomainError na cadeia de err
func MessageOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return MsgStoreFailed
}

// ProblemTypeOf retorna o tipo RFC 7807 correspondente ao Kind
func ProblemTypeOf(k Kind) string {
	switch k {
	case KindValidation:
		return ProblemTypeValidation
	case KindConflict:
		return ProblemTypeConflict
	case KindNotFound:
		return ProblemTypeNotFound
	case KindAuth:
		return ProblemTypeUnauthorized
	default:
		return ProblemTypeInternal
	}
}
