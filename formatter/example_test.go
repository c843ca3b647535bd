package formatter_test

import (
	"fmt"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/formatter"
	"github.com/philipp01105/prettylog/sink"
)

func ExampleNewPrettyFormatter() {
	cfg := formatter.DefaultConfig()
	cfg.MethodCount = 0
	cfg.ShowThreadInfo = false
	cfg.Tag = "APP"
	cfg.Sink = sink.Func(func(level core.Level, tag, line string) error {
		if r := []rune(line); len(r) > 20 {
			line = string(r[:5])
		}
		fmt.Printf("%c/%s: %s\n", level.Letter(), tag, line)
		return nil
	})

	f := formatter.NewPrettyFormatter(cfg)
	_ = f.Log(core.InfoLevel, "NET", "connected\nretries: 0")
	// Output:
	// I/APP-NET: ┌────
	// I/APP-NET: │ connected
	// I/APP-NET: │ retries: 0
	// I/APP-NET: └────
}

func ExampleMergeTag() {
	fmt.Println(formatter.MergeTag("APP", ""))
	fmt.Println(formatter.MergeTag("APP", "APP"))
	fmt.Println(formatter.MergeTag("APP", "NET"))
	// Output:
	// APP
	// APP
	// APP-NET
}
