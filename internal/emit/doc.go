// Package emit renders the generated C++ header and source.
//
// The header declares an AssetView value type and a lookup function:
//
//	namespace web_assets {
//	struct AssetView { const unsigned char* data; size_t size; const char* mime; };
//	bool get(std::string_view path, AssetView* out);
//	}
//
// The source defines one static byte array per asset, a static table of
// {request path, AssetView} pairs in the order given, and get itself: a
// linear exact-match scan where "" and "/" are looked up as "/index.html".
//
// Templates live in templates/ and are embedded at compile time. They use
// [[ ]] delimiters because C++ brace initializers collide with {{ }}.
package emit
