package rbtree

import (
	"errors"
)

const (
	red color = iota
	black
	doubleBlack
	negativeBlack
)

type color uint8

func (in color) String() string {
	switch in {
	case negativeBlack:
		return "NB"
	case red:
		return "R"
	case black:
		return "B"
	case doubleBlack:
		return "BB"
	default:
		panic(errors.New("invalid color"))
	}
}

// weight is the contribution of a node of this color to the black
// height of every path through it.
func (in color) weight() int {
	switch in {
	case negativeBlack:
		return -1
	case red:
		return 0
	case black:
		return 1
	case doubleBlack:
		return 2
	default:
		panic(errors.New("invalid color"))
	}
}

func (in color) addBlack() color {
	switch in {
	case negativeBlack:
		return red
	case red:
		return black
	case black:
		return doubleBlack
	case doubleBlack:
		panic(errors.New("already double black"))
	default:
		panic(errors.New("invalid color"))
	}
}

func (in color) addRed() color {
	switch in {
	case negativeBlack:
		panic(errors.New("already negative black"))
	case red:
		return negativeBlack
	case black:
		return red
	case doubleBlack:
		return black
	default:
		panic(errors.New("invalid color"))
	}
}
