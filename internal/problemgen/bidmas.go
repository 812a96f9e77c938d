package problemgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Operators used in BIDMAS expressions. OpSquare is the postfix "²" and is
// recorded as "^" in the operation log.
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "×"
	OpDivide   = "÷"
	OpSquare   = "^"
)

var (
	errNonInteger = errors.New("division leaves a remainder")
	errDivByZero  = errors.New("division by zero")
	errMalformed  = errors.New("malformed expression")
)

type tokenKind int

const (
	tokNum tokenKind = iota
	tokOp
	tokOpen
	tokClose
	tokSquare
)

type token struct {
	kind tokenKind
	val  int64
	op   string
}

func num(v int64) token    { return token{kind: tokNum, val: v} }
func op(o string) token    { return token{kind: tokOp, op: o} }
func squareTok() token     { return token{kind: tokSquare, op: OpSquare} }
func openTok() token       { return token{kind: tokOpen} }
func closeTok() token      { return token{kind: tokClose} }
func isNum(t token) bool   { return t.kind == tokNum }
func isClose(t token) bool { return t.kind == tokClose }

// render prints tokens the way they appear in question text:
// "(3 + 4) × 5", "6² - 7".
func render(tokens []token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 && t.kind != tokClose && t.kind != tokSquare && tokens[i-1].kind != tokOpen {
			b.WriteByte(' ')
		}
		switch t.kind {
		case tokNum:
			b.WriteString(strconv.FormatInt(t.val, 10))
		case tokOp:
			b.WriteString(t.op)
		case tokOpen:
			b.WriteByte('(')
		case tokClose:
			b.WriteByte(')')
		case tokSquare:
			b.WriteString("²")
		}
	}
	return b.String()
}

// parseExpression tokenizes an expression produced by render. A trailing
// "=" is ignored.
func parseExpression(s string) ([]token, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "="))
	var tokens []token
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			v, err := strconv.ParseInt(string(runes[i:j]), 10, 64)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, num(v))
			i = j - 1
		case r == '+':
			tokens = append(tokens, op(OpAdd))
		case r == '-':
			tokens = append(tokens, op(OpSubtract))
		case r == '×' || r == '*':
			tokens = append(tokens, op(OpMultiply))
		case r == '÷' || r == '/':
			tokens = append(tokens, op(OpDivide))
		case r == '²':
			tokens = append(tokens, squareTok())
		case r == '(':
			tokens = append(tokens, openTok())
		case r == ')':
			tokens = append(tokens, closeTok())
		default:
			return nil, fmt.Errorf("%w: unexpected %q", errMalformed, r)
		}
	}
	if len(tokens) == 0 {
		return nil, errMalformed
	}
	return tokens, nil
}

// evaluation accumulates the step log while an expression is reduced.
type evaluation struct {
	tokens []token
	meta   BidmasMetadata
}

// evaluate reduces tokens to a single number: innermost brackets first,
// then indices, then × and ÷ left to right, then + and - left to right.
// Every reduction is appended to the step log.
func evaluate(tokens []token) (int64, *BidmasMetadata, error) {
	e := &evaluation{tokens: append([]token(nil), tokens...)}
	for _, t := range tokens {
		switch t.kind {
		case tokOpen:
			e.meta.HasBrackets = true
		case tokSquare:
			e.meta.HasIndices = true
		}
	}
	for len(e.tokens) > 1 {
		lo, hi := 0, len(e.tokens)
		if c := indexOf(e.tokens, isClose); c >= 0 {
			o := c - 1
			for o >= 0 && e.tokens[o].kind != tokOpen {
				o--
			}
			if o < 0 {
				return 0, nil, fmt.Errorf("%w: unbalanced brackets", errMalformed)
			}
			lo, hi = o+1, c
		}
		if err := e.reduceOnce(lo, hi); err != nil {
			return 0, nil, err
		}
	}
	if !isNum(e.tokens[0]) {
		return 0, nil, errMalformed
	}
	return e.tokens[0].val, &e.meta, nil
}

// reduceOnce applies the highest-precedence operation inside
// tokens[lo:hi]. When that operation fills a bracket group, the brackets
// are consumed in the same step.
func (e *evaluation) reduceOnce(lo, hi int) error {
	if hi-lo == 1 && lo > 0 && e.tokens[lo-1].kind == tokOpen && hi < len(e.tokens) && isClose(e.tokens[hi]) {
		// "(7)" left behind by nested groups.
		return e.replace(lo-1, hi+1, e.tokens[lo].val, "", nil)
	}

	start, end := -1, -1
	var operation string
	var operands []int64
	var result int64

	if i := indexIn(e.tokens, lo, hi, func(t token) bool { return t.kind == tokSquare }); i >= 0 {
		if i-1 < lo || !isNum(e.tokens[i-1]) {
			return fmt.Errorf("%w: index without a base", errMalformed)
		}
		base := e.tokens[i-1].val
		start, end = i-1, i+1
		operation, operands, result = OpSquare, []int64{base, 2}, base*base
	} else {
		i := indexIn(e.tokens, lo, hi, func(t token) bool {
			return t.kind == tokOp && (t.op == OpMultiply || t.op == OpDivide)
		})
		if i < 0 {
			i = indexIn(e.tokens, lo, hi, func(t token) bool { return t.kind == tokOp })
		}
		if i < 0 || i-1 < lo || i+1 >= hi || !isNum(e.tokens[i-1]) || !isNum(e.tokens[i+1]) {
			return fmt.Errorf("%w: operator without operands", errMalformed)
		}
		a, b := e.tokens[i-1].val, e.tokens[i+1].val
		r, err := apply(e.tokens[i].op, a, b)
		if err != nil {
			return err
		}
		start, end = i-1, i+2
		operation, operands, result = e.tokens[i].op, []int64{a, b}, r
	}

	if start == lo && end == hi && lo > 0 && e.tokens[lo-1].kind == tokOpen && hi < len(e.tokens) && isClose(e.tokens[hi]) {
		start, end = lo-1, hi+1
	}
	return e.replace(start, end, result, operation, operands)
}

// replace substitutes tokens[start:end] with result and records the step.
// An empty operation only strips redundant brackets and is not logged.
func (e *evaluation) replace(start, end int, result int64, operation string, operands []int64) error {
	if operation != "" {
		e.meta.Operations = append(e.meta.Operations, operation)
		e.meta.ExecutionSteps = append(e.meta.ExecutionSteps, BidmasStep{
			Expression:       render(e.tokens),
			ActiveExpression: render(e.tokens[start:end]),
			Operation:        operation,
			Operands:         operands,
			Result:           result,
		})
	}
	next := make([]token, 0, len(e.tokens)-(end-start)+1)
	next = append(next, e.tokens[:start]...)
	next = append(next, num(result))
	next = append(next, e.tokens[end:]...)
	e.tokens = next
	return nil
}

func apply(operator string, a, b int64) (int64, error) {
	switch operator {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, errDivByZero
		}
		if a%b != 0 {
			return 0, errNonInteger
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", errMalformed, operator)
}

func indexOf(tokens []token, match func(token) bool) int {
	return indexIn(tokens, 0, len(tokens), match)
}

func indexIn(tokens []token, lo, hi int, match func(token) bool) int {
	for i := lo; i < hi; i++ {
		if match(tokens[i]) {
			return i
		}
	}
	return -1
}

// EvaluateExpression parses and evaluates a rendered BIDMAS expression,
// returning the result and the full step log.
func EvaluateExpression(expr string) (int64, *BidmasMetadata, error) {
	tokens, err := parseExpression(expr)
	if err != nil {
		return 0, nil, err
	}
	return evaluate(tokens)
}

// Replay applies steps to expr in order by substituting each step's active
// sub-expression with its result. It fails if any step's recorded
// expression differs from the replayed state. The returned string is the
// final value.
func Replay(expr string, steps []BidmasStep) (string, error) {
	cur := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(expr), "="))
	for i, s := range steps {
		if cur != s.Expression {
			return "", fmt.Errorf("step %d: expression %q, replayed %q", i+1, s.Expression, cur)
		}
		next, ok := substitute(cur, s.ActiveExpression, strconv.FormatInt(s.Result, 10))
		if !ok {
			return "", fmt.Errorf("step %d: %q not found in %q", i+1, s.ActiveExpression, cur)
		}
		cur = next
	}
	return strings.Trim(cur, "()"), nil
}

// substitute replaces the first whole-token occurrence of active in expr.
func substitute(expr, active, with string) (string, bool) {
	for from := 0; from <= len(expr)-len(active); {
		i := strings.Index(expr[from:], active)
		if i < 0 {
			return "", false
		}
		i += from
		end := i + len(active)
		if (i == 0 || !isDigitByte(expr[i-1])) && (end == len(expr) || !isDigitByte(expr[end])) {
			return expr[:i] + with + expr[end:], true
		}
		from = i + 1
	}
	return "", false
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

// Bidmas builds a two-operation expression over operands from 2 to 12 and
// keeps drawing until every step, and so the result, is a non-negative
// whole number with every division exact.
func (g *Generator) Bidmas() (Question, error) {
	return g.draw("bidmas", func() (Question, bool) {
		ops, ok := g.bidmasOperators()
		if !ok {
			return Question{}, false
		}
		a, b, c := int64(between(g.rng, 2, 12)), int64(between(g.rng, 2, 12)), int64(between(g.rng, 2, 12))
		brackets := ops[0] != OpSquare && chance(g.rng, g.config.BracketChance)

		var tokens []token
		switch {
		case ops[0] == OpSquare:
			tokens = []token{num(a), squareTok(), op(ops[1]), num(b)}
		case ops[1] == OpSquare && brackets:
			tokens = []token{openTok(), num(a), op(ops[0]), num(b), closeTok(), squareTok()}
		case ops[1] == OpSquare:
			tokens = []token{num(a), op(ops[0]), num(b), squareTok()}
		case brackets:
			tokens = []token{openTok(), num(a), op(ops[0]), num(b), closeTok(), op(ops[1]), num(c)}
		default:
			tokens = []token{num(a), op(ops[0]), num(b), op(ops[1]), num(c)}
		}

		result, meta, err := evaluate(tokens)
		if err != nil || result < 0 {
			return Question{}, false
		}
		for _, step := range meta.ExecutionSteps {
			if step.Result < 0 {
				return Question{}, false
			}
		}

		var operands []string
		for _, t := range tokens {
			if isNum(t) {
				operands = append(operands, itoa(t.val))
			}
		}
		return Question{
			Type:     TypeBidmas,
			Text:     render(tokens) + " =",
			Answer:   itoa(result),
			Operands: operands,
			Bidmas:   meta,
		}, true
	})
}

var bidmasOperators = []string{OpAdd, OpSubtract, OpMultiply, OpDivide, OpSquare}

// bidmasOperators draws two distinct operators. Indices may only be paired
// with + or -.
func (g *Generator) bidmasOperators() ([2]string, bool) {
	first, second := pick(g.rng, bidmasOperators), pick(g.rng, bidmasOperators)
	if first == second {
		return [2]string{}, false
	}
	if first == OpSquare && second != OpAdd && second != OpSubtract {
		return [2]string{}, false
	}
	if second == OpSquare && first != OpAdd && first != OpSubtract {
		return [2]string{}, false
	}
	return [2]string{first, second}, true
}
