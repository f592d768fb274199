package dispatch

import "encoding/json"

// Response is the uniform envelope every operation produces. Body is the
// already-encoded payload; Headers always carry the fixed CORS set.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "*",
	}
}

// JSON encodes v into the envelope body. Strings passed here become JSON
// string literals, which some legacy routes rely on.
func JSON(status int, v any) Response {
	body, err := json.Marshal(v)
	if err != nil {
		return Error(500, "Internal server error")
	}
	return Response{StatusCode: status, Headers: corsHeaders(), Body: string(body)}
}

// Error builds the structured {"error": ...} body.
func Error(status int, message string) Response {
	return JSON(status, map[string]string{"error": message})
}

// Text builds a raw, unencoded string body. Only the legacy plain-string
// responses use this.
func Text(status int, body string) Response {
	return Response{StatusCode: status, Headers: corsHeaders(), Body: body}
}
