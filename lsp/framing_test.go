package lsp_test

import (
	"testing"

	"github.com/javanhut/ravencore/lsp"
	"github.com/stretchr/testify/require"
)

func TestDecoderFeedsOneCompleteMessage(t *testing.T) {
	d := lsp.NewDecoder()
	body := `{"jsonrpc":"2.0","id":1,"result":null}`
	framed := lsp.EncodeMessage([]byte(body))

	msgs := d.Feed(framed)
	require.Len(t, msgs, 1)
	require.Equal(t, body, string(msgs[0]))
}

func TestDecoderSplitsAcrossFeedCalls(t *testing.T) {
	d := lsp.NewDecoder()
	body := `{"jsonrpc":"2.0","id":2,"result":{}}`
	framed := lsp.EncodeMessage([]byte(body))

	half := len(framed) / 2
	msgs := d.Feed(framed[:half])
	require.Empty(t, msgs)

	msgs = d.Feed(framed[half:])
	require.Len(t, msgs, 1)
	require.Equal(t, body, string(msgs[0]))
}

func TestDecoderHandlesTwoMessagesBackToBack(t *testing.T) {
	d := lsp.NewDecoder()
	a := lsp.EncodeMessage([]byte(`{"a":1}`))
	b := lsp.EncodeMessage([]byte(`{"b":2}`))

	msgs := d.Feed(append(a, b...))
	require.Len(t, msgs, 2)
	require.Equal(t, `{"a":1}`, string(msgs[0]))
	require.Equal(t, `{"b":2}`, string(msgs[1]))
}

func TestDecoderDiscardsMalformedHeaderAndContinues(t *testing.T) {
	d := lsp.NewDecoder()
	body := `{"ok":true}`
	good := lsp.EncodeMessage([]byte(body))

	malformed := []byte("Garbage-Header: yes\r\n\r\n")
	msgs := d.Feed(append(malformed, good...))
	require.Len(t, msgs, 1)
	require.Equal(t, body, string(msgs[0]))
}

func TestDecoderHeaderIsCaseAndOrderTolerant(t *testing.T) {
	d := lsp.NewDecoder()
	body := []byte(`{"x":1}`)
	raw := []byte("Content-Type: application/vscode-jsonrpc\r\ncontent-length: " +
		string(rune('0'+len(body))) + "\r\n\r\n")
	msgs := d.Feed(append(raw, body...))
	require.Len(t, msgs, 1)
	require.Equal(t, string(body), string(msgs[0]))
}
