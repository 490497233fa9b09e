// Package report renders a session's event history and known peers as
// a Markdown summary, then to HTML, for a static "what happened"
// operator artifact.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/wpasession/p2pctl/internal/peerstore"
	"github.com/wpasession/p2pctl/internal/wpaevent"
)

// RenderMarkdown builds a Markdown report from a session's recent
// event history and known peer directory.
func RenderMarkdown(generatedAt time.Time, recent []wpaevent.EventRecord, peers []peerstore.Peer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# p2pctl session report\n\n")
	fmt.Fprintf(&b, "Generated %s\n\n", generatedAt.Format(time.RFC3339))

	b.WriteString("## Event counts\n\n")
	b.WriteString("| Kind | Count |\n| --- | --- |\n")
	for _, kv := range countByKind(recent) {
		fmt.Fprintf(&b, "| %s | %d |\n", kv.kind, kv.count)
	}
	b.WriteString("\n")

	b.WriteString("## Known peers\n\n")
	if len(peers) == 0 {
		b.WriteString("No peers recorded.\n\n")
	} else {
		b.WriteString("| MAC | Device | Type | Last seen | Connections |\n| --- | --- | --- | --- | --- |\n")
		for _, p := range peers {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %d |\n",
				p.MAC, orDash(p.DeviceName), orDash(p.PrimaryDeviceType), p.LastSeenHumanized(), p.ConnectCount)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Timeline\n\n")
	if len(recent) == 0 {
		b.WriteString("No events recorded.\n")
	} else {
		for _, rec := range recent {
			fmt.Fprintf(&b, "- `%s`\n", rec.String())
		}
	}

	return b.String()
}

// RenderHTML converts a Markdown report to a standalone HTML document.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("report: render html: %w", err)
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>p2pctl session report</title></head>
<body style="font-family: sans-serif; max-width: 960px; margin: 2rem auto;">
%s
</body></html>`, buf.String())
	return html, nil
}

type kindCount struct {
	kind  string
	count int
}

func countByKind(recent []wpaevent.EventRecord) []kindCount {
	counts := make(map[string]int)
	for _, rec := range recent {
		counts[rec.Kind.String()]++
	}

	out := make([]kindCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, kindCount{kind: k, count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].kind < out[j].kind
	})
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
