package lsp

import "github.com/javanhut/ravencore/encoding"

// clientCapabilitiesParams builds the initialize params carrying the
// literal capabilities bundle, per spec §4.9 item 1.
func clientCapabilitiesParams(workspaceURI string) map[string]any {
	return map[string]any{
		"processId":    nil,
		"rootUri":      workspaceURI,
		"capabilities": clientCapabilities(),
	}
}

func clientCapabilities() map[string]any {
	return map[string]any{
		"general": map[string]any{
			"positionEncodings": []string{"utf-8", "utf-16"},
		},
		"textDocument": map[string]any{
			"codeAction": map[string]any{
				"codeActionLiteralSupport": map[string]any{
					"codeActionKind": map[string]any{
						"valueSet": []string{"", "quickfix", "refactor", "source"},
					},
				},
			},
			"rename": map[string]any{
				"prepareSupport": true,
			},
			"completion": map[string]any{
				"completionItem": map[string]any{
					"resolveSupport": map[string]any{
						"properties": []string{"documentation", "detail", "additionalTextEdits"},
					},
				},
			},
			"signatureHelp": map[string]any{
				"contextSupport": true,
			},
			"hover": map[string]any{
				"contentFormat": []string{"plaintext", "markdown"},
			},
			"definition": map[string]any{
				"linkSupport": true,
			},
			"diagnostic": map[string]any{
				"dynamicRegistration": true,
			},
		},
	}
}

// Capabilities records the effective capabilities negotiated with the
// server: the encoding it agreed to and whether its initialize result
// advertised pull diagnostics (a diagnosticProvider entry). A later
// client/registerCapability request for diagnostics is not handled and
// does not set PullDiagnostics.
type Capabilities struct {
	Encoding        encoding.PositionEncoding
	PullDiagnostics bool
}

// ParseServerCapabilitiesForTest exposes parseServerCapabilities to tests
// in the external lsp_test package.
func ParseServerCapabilitiesForTest(result map[string]any) Capabilities {
	return parseServerCapabilities(result)
}

func parseServerCapabilities(result map[string]any) Capabilities {
	caps := Capabilities{Encoding: encoding.UTF16}

	serverCaps, _ := result["capabilities"].(map[string]any)
	if serverCaps == nil {
		return caps
	}
	if enc, ok := serverCaps["positionEncoding"].(string); ok {
		caps.Encoding = encoding.ParsePositionEncoding(enc)
	}
	if _, ok := serverCaps["diagnosticProvider"]; ok {
		caps.PullDiagnostics = true
	}
	return caps
}
