package seed

import (
	"context"
	"encoding/json"
	"fmt"
)

// recordedCall captures one request seen by fakeBackend, with the body
// normalized through JSON so it compares like the wire payload.
type recordedCall struct {
	Path  string
	Token string
	Body  map[string]any
}

// fakeBackend satisfies backendClient with an injectable response function.
type fakeBackend struct {
	calls []recordedCall
	post  func(path, token string, body map[string]any) (Response, error)
}

func (f *fakeBackend) Post(_ context.Context, path, token string, body any) (Response, error) {
	call := recordedCall{Path: path, Token: token}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Response{}, err
		}
		if err := json.Unmarshal(data, &call.Body); err != nil {
			return Response{}, err
		}
	}
	f.calls = append(f.calls, call)
	if f.post != nil {
		return f.post(path, token, call.Body)
	}
	return echoResponse(path, call.Body), nil
}

func (f *fakeBackend) callsTo(path string) []recordedCall {
	var out []recordedCall
	for _, call := range f.calls {
		if call.Path == path {
			out = append(out, call)
		}
	}
	return out
}

// echoResponse mimics a backend that issues "<email>-token" on login.
func echoResponse(path string, body map[string]any) Response {
	if path == PathLogin {
		return jsonResponse(200, map[string]any{"token": fmt.Sprintf("%v-token", body["email"])})
	}
	return jsonResponse(201, "created")
}

func jsonResponse(status int, value any) Response {
	data, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		panic(err)
	}
	return Response{StatusCode: status, Body: data, Value: decoded}
}

var demoTokens = []string{
	"adam1@gmail.com-token",
	"bob@gmail.com-token",
	"charlie@gmail.com-token",
	"delta@gmail.com-token",
}
