package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/iyasyr/iron-lms/internal/common"
)

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Execute posts a GraphQL operation document through the pipeline and
// unmarshals the "data" object into out (which may be nil for fire-and-forget
// mutations). GraphQL operations share the REST interception path: an
// unauthorized error entry triggers the same forced logout as an HTTP 401.
func (p *Pipeline) Execute(ctx context.Context, doc string, vars map[string]any, out any) error {
	resp, err := p.R(ctx).
		SetBody(gqlRequest{Query: doc, Variables: vars}).
		Post(p.graphqlPath)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	if !resp.IsSuccess() {
		return Classify(resp)
	}

	body := resp.Body()
	if errs := gjson.GetBytes(body, "errors"); errs.Exists() && len(errs.Array()) > 0 {
		entry := errs.Array()[0]
		kind := classifyGraphQLError(entry)

		// Unauthorized carried inside a 200 payload is still fatal to the
		// session, same as a bare 401, but only when the request actually
		// presented a token.
		statusCode := entry.Get("extensions.originalError.statusCode").Int()
		if (statusCode == http.StatusUnauthorized || errors.Is(kind, common.ErrUnauthorized)) &&
			resp.Request.Header.Get(common.AuthHeaderName) != "" {
			p.forceLogout(ctx)
		}
		return kind
	}

	if out == nil {
		return nil
	}

	data := gjson.GetBytes(body, "data")
	if !data.Exists() {
		return fmt.Errorf("%w: graphql response has no data", common.ErrInternal)
	}
	if err := json.Unmarshal([]byte(data.Raw), out); err != nil {
		return fmt.Errorf("%w: decoding graphql data: %v", common.ErrInternal, err)
	}
	return nil
}
