//go:build tools

package tools

// Developer tooling, not compiled into any binary.
//
// - github.com/pressly/goose/v3/cmd/goose: pinned through the go.mod tool block;
//   cmd/migrate covers the same commands against the embedded migrations.
// - github.com/matryer/moq: regenerates the *_mock_test.go files (go generate ./...).
