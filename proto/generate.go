// Package proto holds the wire and storage schemas. Generated code lands in
// the per-schema subdirectories and is imported as whisper-hub/proto/<name>.
package proto

//go:generate protoc --go_out=paths=source_relative:. --go-grpc_out=paths=source_relative:. chat/chat.proto
//go:generate protoc --go_out=paths=source_relative:. --go-grpc_out=paths=source_relative:. account/account.proto
//go:generate protoc --go_out=paths=source_relative:. storage/storage.proto
