// Package webembed turns a directory of static web assets into a C++ header
// and source pair that serve those assets from memory.
//
// # Quick Start
//
// Create a generator and run it over an asset directory:
//
//	gen := webembed.NewGenerator(
//	    webembed.WithNamespace("my_app_web"),
//	)
//	result, err := gen.Generate(webembed.Input{
//	    InputDir:   "src/web",
//	    HeaderPath: "build/gen/web_assets_embedded.h",
//	    SourcePath: "build/gen/web_assets_embedded.cpp",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Table.Len(), "assets embedded")
//
// The host program then includes the header and calls get:
//
//	my_app_web::AssetView view;
//	if (my_app_web::get(request_path, &view)) {
//	    respond(view.data, view.size, view.mime);
//	}
//
// # Pipeline
//
// Generation runs in one synchronous pass:
//
//  1. Collect every regular file under the input directory, sorted by path
//  2. Read each file, resolve its MIME type from the extension, and derive a
//     C++ symbol from "asset_" + relative path
//  3. Render the header and source in memory
//  4. Write both files, creating parent directories and replacing old files
//
// Nothing is written until steps 1 to 3 have succeeded for every asset, so a
// missing input directory or a symbol collision leaves old outputs untouched.
//
// # Lookup Semantics
//
// Request paths are "/" + the relative path. An empty path and "/" both look
// up "/index.html". Matching is exact and case-sensitive. Table.Get mirrors
// the generated get function so callers can check a tree without compiling
// C++.
//
// # Determinism
//
// The same input tree always produces byte-identical outputs. The generated
// files carry no timestamps or absolute paths.
package webembed
