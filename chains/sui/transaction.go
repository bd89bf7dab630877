package sui

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

type ArgumentKind uint8

const (
	GasCoinArgument ArgumentKind = iota
	InputArgument
	ResultArgument
	NestedResultArgument
)

// Argument references a value inside a programmable transaction.
type Argument struct {
	Kind        ArgumentKind
	Index       uint16
	ResultIndex uint16
}

func (a Argument) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case GasCoinArgument:
		return json.Marshal(map[string]interface{}{"$kind": "GasCoin", "GasCoin": true})
	case InputArgument:
		return json.Marshal(map[string]interface{}{"$kind": "Input", "Input": a.Index})
	case ResultArgument:
		return json.Marshal(map[string]interface{}{"$kind": "Result", "Result": a.Index})
	case NestedResultArgument:
		return json.Marshal(map[string]interface{}{"$kind": "NestedResult", "NestedResult": []uint16{a.Index, a.ResultIndex}})
	default:
		return nil, fmt.Errorf("unknown argument kind %d", a.Kind)
	}
}

// CallArg is a transaction input, either an object id or BCS encoded pure bytes.
type CallArg struct {
	ObjectID string
	Pure     []byte
}

func (c CallArg) MarshalJSON() ([]byte, error) {
	if c.ObjectID != "" {
		return json.Marshal(map[string]interface{}{
			"$kind":            "UnresolvedObject",
			"UnresolvedObject": map[string]string{"objectId": c.ObjectID},
		})
	}
	return json.Marshal(map[string]interface{}{
		"$kind": "Pure",
		"Pure":  map[string]string{"bytes": base64.StdEncoding.EncodeToString(c.Pure)},
	})
}

type Command interface {
	Kind() string
}

type SplitCoins struct {
	Coin    Argument   `json:"coin"`
	Amounts []Argument `json:"amounts"`
}

func (c *SplitCoins) Kind() string { return "SplitCoins" }

type MergeCoins struct {
	Destination Argument   `json:"destination"`
	Sources     []Argument `json:"sources"`
}

func (c *MergeCoins) Kind() string { return "MergeCoins" }

type MoveCall struct {
	Package       string     `json:"package"`
	Module        string     `json:"module"`
	Function      string     `json:"function"`
	TypeArguments []string   `json:"typeArguments"`
	Arguments     []Argument `json:"arguments"`
}

func (c *MoveCall) Kind() string { return "MoveCall" }

// Transaction is an unsigned programmable transaction. Commands execute atomically.
type Transaction struct {
	Sender   string
	Inputs   []CallArg
	Commands []Command

	objects map[string]uint16
}

func NewTransaction(sender string) *Transaction {
	return &Transaction{
		Sender:  sender,
		objects: make(map[string]uint16),
	}
}

func (tx *Transaction) Gas() Argument {
	return Argument{Kind: GasCoinArgument}
}

// Object adds an object input. The same object id always resolves to the same input.
func (tx *Transaction) Object(id string) Argument {
	if i, ok := tx.objects[id]; ok {
		return Argument{Kind: InputArgument, Index: i}
	}

	i := tx.addInput(CallArg{ObjectID: id})
	tx.objects[id] = i
	return Argument{Kind: InputArgument, Index: i}
}

func (tx *Transaction) Pure(b []byte) Argument {
	return Argument{Kind: InputArgument, Index: tx.addInput(CallArg{Pure: b})}
}

// SplitCoins returns one new coin per amount.
func (tx *Transaction) SplitCoins(coin Argument, amounts ...Argument) []Argument {
	i := tx.addCommand(&SplitCoins{Coin: coin, Amounts: amounts})

	results := make([]Argument, len(amounts))
	for j := range amounts {
		// nolint:gosec
		results[j] = Argument{Kind: NestedResultArgument, Index: i, ResultIndex: uint16(j)}
	}
	return results
}

func (tx *Transaction) MergeCoins(destination Argument, sources ...Argument) {
	tx.addCommand(&MergeCoins{Destination: destination, Sources: sources})
}

// MoveCall appends a call to a `package::module::function` target.
func (tx *Transaction) MoveCall(target string, typeArguments []string, arguments ...Argument) (Argument, error) {
	parts := strings.Split(target, "::")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Argument{}, fmt.Errorf("invalid move call target %s", target)
	}

	i := tx.addCommand(&MoveCall{
		Package:       parts[0],
		Module:        parts[1],
		Function:      parts[2],
		TypeArguments: typeArguments,
		Arguments:     arguments,
	})
	return Argument{Kind: ResultArgument, Index: i}, nil
}

func (tx *Transaction) MarshalJSON() ([]byte, error) {
	commands := make([]map[string]interface{}, len(tx.Commands))
	for i, c := range tx.Commands {
		commands[i] = map[string]interface{}{
			"$kind":  c.Kind(),
			c.Kind(): c,
		}
	}

	return json.Marshal(map[string]interface{}{
		"version":  2,
		"sender":   tx.Sender,
		"inputs":   tx.Inputs,
		"commands": commands,
	})
}

func (tx *Transaction) addInput(arg CallArg) uint16 {
	tx.Inputs = append(tx.Inputs, arg)
	// nolint:gosec
	return uint16(len(tx.Inputs) - 1)
}

func (tx *Transaction) addCommand(c Command) uint16 {
	tx.Commands = append(tx.Commands, c)
	// nolint:gosec
	return uint16(len(tx.Commands) - 1)
}
