package webembed_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-webembed"
)

// Example generates embedded sources for a two-file site.
func Example() {
	dir, err := os.MkdirTemp("", "webembed-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	web := filepath.Join(dir, "web")
	_ = os.MkdirAll(filepath.Join(web, "css"), 0o755)
	_ = os.WriteFile(filepath.Join(web, "index.html"), []byte("<h1>hi</h1>"), 0o644)
	_ = os.WriteFile(filepath.Join(web, "css", "app.css"), []byte("h1{}"), 0o644)

	gen := webembed.NewGenerator(webembed.WithNamespace("my_app_web"))
	result, err := gen.Generate(webembed.Input{
		InputDir:   web,
		HeaderPath: filepath.Join(dir, "gen", "assets.h"),
		SourcePath: filepath.Join(dir, "gen", "assets.cpp"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, a := range result.Table.Assets() {
		fmt.Println(a.RequestPath(), a.Symbol, a.MIME)
	}
	// Output:
	// /css/app.css asset_css_app_css text/css; charset=utf-8
	// /index.html asset_index_html text/html; charset=utf-8
}

// ExampleTable_Lookup shows the index aliasing done by the generated get.
func ExampleTable_Lookup() {
	tbl, err := webembed.NewTable([]webembed.Asset{
		{RelPath: "index.html", Data: []byte("<h1>hi</h1>"), MIME: "text/html; charset=utf-8", Symbol: "asset_index_html"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	view, ok := tbl.Lookup("/")
	fmt.Println(ok, view.Size, view.MIME)
	// Output: true 11 text/html; charset=utf-8
}
