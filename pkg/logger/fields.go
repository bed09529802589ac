package logger

import "time"

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration creates a duration field in milliseconds
func Duration(key string, d time.Duration) Field {
	return Field{Key: key, Value: d.Milliseconds()}
}

// Any creates a field with any value
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// --- Domain-specific field helpers ---

// Email creates an email field
func Email(email string) Field {
	return Field{Key: "email", Value: email}
}

// Status creates a status field
func Status(status int) Field {
	return Field{Key: "status", Value: status}
}

// Method creates an HTTP method field
func Method(method string) Field {
	return Field{Key: "method", Value: method}
}

// Path creates an HTTP path field
func Path(path string) Field {
	return Field{Key: "path", Value: path}
}

// RemoteIP creates a remote_ip field
func RemoteIP(ip string) Field {
	return Field{Key: "remote_ip", Value: ip}
}

// Provider creates a provider field
func Provider(provider string) Field {
	return Field{Key: "provider", Value: provider}
}

// MessageID creates a message_id field
func MessageID(id string) Field {
	return Field{Key: "message_id", Value: id}
}

// ContentKey creates a content_key field
func ContentKey(key string) Field {
	return Field{Key: "content_key", Value: key}
}

// ObjectKey creates an object_key field for blob storage
func ObjectKey(key string) Field {
	return Field{Key: "object_key", Value: key}
}

// URL creates a url field
func URL(u string) Field {
	return Field{Key: "url", Value: u}
}

// EventID creates an event_id field for payment webhooks
func EventID(id string) Field {
	return Field{Key: "event_id", Value: id}
}

// EventType creates an event_type field
func EventType(t string) Field {
	return Field{Key: "event_type", Value: t}
}

// PaymentIntentID creates a payment_intent_id field
func PaymentIntentID(id string) Field {
	return Field{Key: "payment_intent_id", Value: id}
}

// SessionID creates a checkout session_id field
func SessionID(id string) Field {
	return Field{Key: "session_id", Value: id}
}
