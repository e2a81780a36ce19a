package codefmt

import "go/token"

// Errorf is a shorthand for [Formatter.Errorf].
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}

type poser struct{ pos token.Pos }

func (p poser) Pos() token.Pos { return p.pos }

// Pos adapts a bare position into a [Poser] for [Errorf].
func Pos(pos token.Pos) Poser { return poser{pos} }
