// geo-query：命令行查询参照表，结果以表格输出
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/liushuochen/gotable"

	"geo-rd/pkg/geord"
)

func main() {
	var o options
	fs := flag.NewFlagSet("geo-query", flag.ExitOnError)
	fs.StringVar(&o.table, "table", "provinces", "provinces | municipalities | districts")
	fs.StringVar(&o.code, "code", "", "exact code")
	fs.StringVar(&o.name, "name", "", "exact name, case insensitive")
	fs.StringVar(&o.like, "like", "", "name fragment, case insensitive")
	fs.StringVar(&o.province, "province", "", "parent province code")
	fs.StringVar(&o.municipality, "municipality", "", "parent municipality code (districts only)")
	fs.StringVar(&o.exclude, "exclude", "", "comma separated codes to leave out, compared as given")
	_ = fs.Parse(os.Args[1:])

	header, rows, err := run(geord.Default(), o)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(rows) == 0 {
		fmt.Println("no results")
		return
	}
	t, err := gotable.Create(header...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create table:", err)
		os.Exit(1)
	}
	for _, r := range rows {
		if err := t.AddRow(r); err != nil {
			fmt.Fprintln(os.Stderr, "add row:", err)
			os.Exit(1)
		}
	}
	fmt.Printf("%v", t)
}
