package config

import (
	"fmt"
	"log"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// applyKDL overlays the settings found in a .termscan.kdl document onto cfg.
// Unknown nodes are ignored.
//
//	search { engine "ecmascript" }
//	results { path "results.csv"; enabled true }
//	output { echo_contents false }
//	report { zero_words "error" }
func applyKDL(cfg *Config, content string) error {
	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "version":
			if v, ok := firstIntArg(n); ok {
				cfg.Version = v
			}
		case "search":
			for _, cn := range n.Children {
				assignSimpleString(cn, "engine", func(v string) { cfg.Search.Engine = v })
			}
		case "results":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "path":
					if s, ok := firstStringArg(cn); ok {
						cfg.Results.Path = s
					}
				case "enabled":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Results.Enabled = b
					}
				}
			}
		case "output":
			for _, cn := range n.Children {
				if nodeName(cn) == "echo_contents" {
					if b, ok := firstBoolArg(cn); ok {
						cfg.Output.EchoContents = b
					}
				}
			}
		case "report":
			for _, cn := range n.Children {
				assignSimpleString(cn, "zero_words", func(v string) { cfg.Report.ZeroWords = v })
			}
		}
	}

	return nil
}

// Helpers over the kdl-go document model
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}
func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}
func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	log.Printf("WARNING: invalid bool value for '%s' in KDL config, got %T", nodeName(n), n.Arguments[0].Value)
	return false, false
}
func assignSimpleString(n *document.Node, target string, set func(string)) {
	if nodeName(n) == target {
		if s, ok := firstStringArg(n); ok {
			set(s)
		}
	}
}
