// Utilities for printing ledger responses in a terminal
package terminal

import (
	"fmt"
	"io"
	"sort"

	"github.com/aqrl/xrpl-toolkit/xrpl/models"
	"github.com/fatih/color"
	"github.com/tidwall/pretty"
)

// Flag controls line layout
type Flag uint32

// flags
const (
	Indent Flag = 1 << iota
	DoubleIndent
	TripleIndent
)

// Default flag
var Default Flag

// Output is where Println writes, color aware by default
var Output io.Writer = color.Output

var (
	successStyle = color.New(color.FgGreen, color.Bold)
	errorStyle   = color.New(color.FgRed, color.Bold)
	addressStyle = color.New(color.FgYellow)
	nftStyle     = color.New(color.FgMagenta)
	plainStyle   = color.New(color.Reset)
	infoStyle    = color.New(color.FgRed)
)

var jsonOptions = &pretty.Options{
	Width:    -1,
	Prefix:   "",
	Indent:   "    ",
	SortKeys: true,
}

// Address is a labelled account address
type Address struct {
	Label   string
	Address string
}

// NFT is one raw NFT record keyed by its token id
type NFT struct {
	ID     string
	Record []byte
}

// JSON is raw json printed with sorted keys
type JSON []byte

// PrettyJSON formats raw json with sorted keys and 4-space indent
func PrettyJSON(raw []byte) string {
	out := pretty.PrettyOptions(raw, jsonOptions)
	if !color.NoColor {
		out = pretty.Color(out, nil)
	}
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return string(out)
}

type bundle struct {
	color  *color.Color
	format string
	values []interface{}
	flag   Flag
}

func newBundle(value interface{}, flag Flag) (*bundle, error) {
	switch v := value.(type) {
	case *models.Response:
		if v == nil {
			return nil, fmt.Errorf("nil response")
		}
		style := successStyle
		if !v.IsSuccessful() {
			style = errorStyle
		}
		return &bundle{
			color:  style,
			format: "status: %s\n%s",
			values: []interface{}{v.Status, PrettyJSON(v.Result)},
			flag:   flag,
		}, nil
	case Address:
		return &bundle{
			color:  addressStyle,
			format: "%s: %s",
			values: []interface{}{v.Label, v.Address},
			flag:   flag,
		}, nil
	case NFT:
		return &bundle{
			color:  nftStyle,
			format: "%s -> %s",
			values: []interface{}{v.ID, PrettyJSON(v.Record)},
			flag:   flag,
		}, nil
	case JSON:
		return &bundle{
			color:  plainStyle,
			format: "%s",
			values: []interface{}{PrettyJSON(v)},
			flag:   flag,
		}, nil
	case fmt.Stringer:
		return &bundle{
			color:  plainStyle,
			format: "%s",
			values: []interface{}{v.String()},
			flag:   flag,
		}, nil
	default:
		return &bundle{
			color:  infoStyle,
			format: "%v",
			values: []interface{}{v},
			flag:   flag,
		}, nil
	}
}

func indent(flag Flag) string {
	switch {
	case flag&Indent > 0:
		return "    "
	case flag&DoubleIndent > 0:
		return "        "
	case flag&TripleIndent > 0:
		return "            "
	default:
		return ""
	}
}

// Fprintln writes value to w on its own line
func Fprintln(w io.Writer, value interface{}, flag Flag) {
	b, err := newBundle(value, flag)
	if err != nil {
		infoStyle.Fprintln(w, err.Error())
		return
	}
	b.color.Fprintf(w, indent(flag)+b.format+"\n", b.values...)
}

// Println writes value to Output
func Println(value interface{}, flag Flag) {
	Fprintln(Output, value, flag)
}

// Sprint formats value without a trailing newline
func Sprint(value interface{}, flag Flag) string {
	b, err := newBundle(value, flag)
	if err != nil {
		return fmt.Sprintf("Cannot format: %+v", value)
	}
	return b.color.Sprintf(indent(flag)+b.format, b.values...)
}

// PrintNFTs prints nfts ordered by token id
func PrintNFTs(w io.Writer, nfts map[string][]byte) {
	ids := make([]string, 0, len(nfts))
	for id := range nfts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		Fprintln(w, NFT{ID: id, Record: nfts[id]}, Default)
	}
}
