package plugins

import (
	"regexp"

	"github.com/tdewolff/svgo"
	"go.uber.org/zap"
)

// RemoveComments removes comments, except those matching one of the preservePatterns. By default legal comments starting with ! are kept.
var RemoveComments = &svgo.Plugin{
	Name:        "removeComments",
	Description: "removes comments",
	Fn:          removeComments,
}

func removeComments(root *svgo.Node, params svgo.Params, info *svgo.Info) *svgo.Visitor {
	patterns := []string{"^!"}
	if params.Has("preservePatterns") {
		patterns = params.Strings("preservePatterns")
	}
	var preserve []*regexp.Regexp
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			info.Logger.Warn("invalid preserve pattern", zap.String("pattern", pattern), zap.Error(err))
			continue
		}
		preserve = append(preserve, re)
	}

	return &svgo.Visitor{
		Comment: svgo.Hooks{
			Enter: func(n *svgo.Node) svgo.Action {
				for _, re := range preserve {
					if re.MatchString(n.Value) {
						return svgo.Continue
					}
				}
				n.Detach()
				return svgo.Continue
			},
		},
	}
}
