package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"github.com/sublee/strenum/internal/codefmt"
	"github.com/sublee/strenum/internal/strenum/rename"
)

// Source identifies which annotation system a directive belongs to. Native
// strenum directives always win over serde directives mined for
// compatibility.
type Source int

const (
	SourceNative Source = iota // //strenum:
	SourceSerde                // //serde:
)

const (
	nativeMarker = "//strenum:"
	serdeMarker  = "//serde:"
)

// directive is one annotation comment, split into its key and raw payload.
type directive struct {
	src  Source
	key  string    // identifier right after the marker
	rest string    // raw payload after the key, may be empty
	pos  token.Pos // position of the comment
	off  int       // byte offset of rest within the comment text
}

// Pos implements [codefmt.Poser].
func (d directive) Pos() token.Pos { return d.pos }

// payloadPos returns the position of the first payload byte.
func (d directive) payloadPos() token.Pos { return d.pos + token.Pos(d.off) }

// scanDirectives extracts strenum and serde directives from the given comment
// groups in source order. Nil groups are allowed. Comments that carry neither
// marker are not directives and are skipped.
func scanDirectives(groups ...*ast.CommentGroup) []directive {
	var dirs []directive
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, c := range group.List {
			var src Source
			var marker string
			switch {
			case strings.HasPrefix(c.Text, nativeMarker):
				src, marker = SourceNative, nativeMarker
			case strings.HasPrefix(c.Text, serdeMarker):
				src, marker = SourceSerde, serdeMarker
			default:
				continue
			}

			rest := c.Text[len(marker):]
			keyEnd := 0
			for keyEnd < len(rest) && isIdentByte(rest[keyEnd]) {
				keyEnd++
			}

			dirs = append(dirs, directive{
				src:  src,
				key:  rest[:keyEnd],
				rest: rest[keyEnd:],
				pos:  c.Slash,
				off:  len(marker) + keyEnd,
			})
		}
	}
	return dirs
}

// typeAttrs is the resolved type-level annotation set.
type typeAttrs struct {
	derive        bool
	nonExhaustive bool
	renameAll     *Spec[rename.Rule]
}

// resolveTypeAttrs folds the type-level directives of one declaration.
//
// The rename_all precedence: a native //strenum:str wins outright and a
// second one is a duplicate error; absent a native one, the first
// //serde:rename_all is used; serde directives seen after a winner are
// silently ignored. Serde keys other than rename_all are not ours and are
// skipped.
func (p *Parser) resolveTypeAttrs(dirs []directive) (typeAttrs, error) {
	var ta typeAttrs
	var errs error

	native := false
	for _, d := range dirs {
		switch {
		case d.src == SourceNative && d.key == "derive":
			if strings.TrimSpace(d.rest) != "" {
				errs = errors.Join(errs, codefmt.Errorf(p, d, "//strenum:derive takes no value"))
				continue
			}
			ta.derive = true

		case d.src == SourceNative && d.key == "non_exhaustive":
			if strings.TrimSpace(d.rest) != "" {
				errs = errors.Join(errs, codefmt.Errorf(p, d, "//strenum:non_exhaustive takes no value"))
				continue
			}
			ta.nonExhaustive = true

		case d.src == SourceNative && d.key == "str":
			if native {
				errs = errors.Join(errs, codefmt.Errorf(p, d, "duplicate //strenum:str directive"))
				continue
			}
			native = true

			spec, err := p.parseRuleSpec(d)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			ta.renameAll = spec

		case d.src == SourceNative:
			errs = errors.Join(errs, codefmt.Errorf(p, d, "unknown directive //strenum:%s", d.key))

		case d.src == SourceSerde && d.key == "rename_all":
			if native || ta.renameAll != nil {
				// Native always wins; among serde directives the first wins.
				continue
			}

			spec, err := p.parseRuleSpec(d)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			ta.renameAll = spec

		default:
			// Other serde keys belong to the serde framework, not to us.
		}
	}

	return ta, errs
}

// resolveVariantAttrs folds the variant-level directives of one constant
// declaration. Same precedence as the type level, but the payload is a raw
// replacement string and the serde key is rename.
func (p *Parser) resolveVariantAttrs(dirs []directive) (*Spec[string], error) {
	var rn *Spec[string]
	var errs error

	native := false
	for _, d := range dirs {
		switch {
		case d.src == SourceNative && d.key == "str":
			if native {
				errs = errors.Join(errs, codefmt.Errorf(p, d, "duplicate //strenum:str directive"))
				continue
			}
			native = true

			spec, err := p.parseStringSpec(d)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			rn = spec

		case d.src == SourceNative:
			errs = errors.Join(errs, codefmt.Errorf(p, d, "unknown directive //strenum:%s", d.key))

		case d.src == SourceSerde && d.key == "rename":
			if native || rn != nil {
				continue
			}

			spec, err := p.parseStringSpec(d)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			rn = spec

		default:
		}
	}

	return rn, errs
}

// parseStringSpec parses a directive payload whose values are raw strings.
func (p *Parser) parseStringSpec(d directive) (*Spec[string], error) {
	spec, err := p.parseSpec(d.payloadPos(), d.rest)
	if err != nil {
		return nil, err
	}
	return convSpec(spec, func(v lit) (string, error) {
		return v.val, nil
	})
}

// parseRuleSpec parses a directive payload whose values are rename-rule
// names.
func (p *Parser) parseRuleSpec(d directive) (*Spec[rename.Rule], error) {
	spec, err := p.parseSpec(d.payloadPos(), d.rest)
	if err != nil {
		return nil, err
	}
	return convSpec(spec, func(v lit) (rename.Rule, error) {
		r, err := rename.Resolve(v.val)
		if err != nil {
			return 0, codefmt.Errorf(p, codefmt.Pos(v.pos), "%s", err.Error())
		}
		return r, nil
	})
}

// hasNative reports whether any directive comes from the native marker.
func hasNative(dirs []directive) bool {
	for _, d := range dirs {
		if d.src == SourceNative {
			return true
		}
	}
	return false
}
