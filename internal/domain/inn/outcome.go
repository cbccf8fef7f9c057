package inn

import "fmt"

// Placeholders used when the registry omits a field
const (
	NamePlaceholder    = "Название отсутствует"
	AddressPlaceholder = "Адрес отсутствует"
)

// Kind classifies the result of a single registry lookup
type Kind string

const (
	KindFound            Kind = "found"
	KindNotFound         Kind = "not_found"
	KindEmpty            Kind = "empty"
	KindUnauthorized     Kind = "unauthorized"
	KindUnexpectedStatus Kind = "unexpected_status"
	KindParseError       Kind = "parse_error"
	KindTransportError   Kind = "transport_error"
)

// Outcome is the result of looking up one identifier in the registry
type Outcome struct {
	Identifier string
	Kind       Kind
	Name       string
	Address    string
	StatusCode int
	Err        error
}

// Found creates a successful outcome, substituting placeholders for missing fields
func Found(id, name, address string) Outcome {
	if name == "" {
		name = NamePlaceholder
	}
	if address == "" {
		address = AddressPlaceholder
	}
	return Outcome{Identifier: id, Kind: KindFound, Name: name, Address: address}
}

// NotFound creates an outcome for an identifier the registry has no company for
func NotFound(id string) Outcome {
	return Outcome{Identifier: id, Kind: KindNotFound}
}

// Empty creates an outcome for a successful response without a body
func Empty(id string) Outcome {
	return Outcome{Identifier: id, Kind: KindEmpty}
}

// Unauthorized creates an outcome for a rejected API key
func Unauthorized(id string) Outcome {
	return Outcome{Identifier: id, Kind: KindUnauthorized, StatusCode: 401}
}

// UnexpectedStatus creates an outcome for any other non-2xx response
func UnexpectedStatus(id string, statusCode int) Outcome {
	return Outcome{Identifier: id, Kind: KindUnexpectedStatus, StatusCode: statusCode}
}

// ParseError creates an outcome for a response body that is not valid JSON
func ParseError(id string, err error) Outcome {
	return Outcome{Identifier: id, Kind: KindParseError, Err: err}
}

// TransportError creates an outcome for a request that never got a response
func TransportError(id string, err error) Outcome {
	return Outcome{Identifier: id, Kind: KindTransportError, Err: err}
}

// OK reports whether the lookup produced company data
func (o Outcome) OK() bool {
	return o.Kind == KindFound
}

// Text renders the outcome as shown to the user
func (o Outcome) Text() string {
	switch o.Kind {
	case KindFound:
		return fmt.Sprintf("🔹 ИНН %s\n%s\nАдрес: %s", o.Identifier, o.Name, o.Address)
	case KindNotFound:
		return fmt.Sprintf("ИНН %s: компания не найдена.", o.Identifier)
	case KindEmpty:
		return fmt.Sprintf("ИНН %s: не удалось получить данные. Пустой ответ от сервера.", o.Identifier)
	case KindUnauthorized:
		return "Ошибка: неверный токен API. Обратитесь к администратору."
	case KindUnexpectedStatus:
		return fmt.Sprintf("ИНН %s: получен неожиданный ответ от API (%d).", o.Identifier, o.StatusCode)
	case KindParseError:
		return fmt.Sprintf("Ошибка при разборе данных для ИНН %s.", o.Identifier)
	case KindTransportError:
		return fmt.Sprintf("Ошибка соединения с API: %v", o.Err)
	default:
		return fmt.Sprintf("Непредвиденная ошибка при обработке запроса ИНН %s.", o.Identifier)
	}
}
