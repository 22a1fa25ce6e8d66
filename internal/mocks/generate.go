package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Sink --dir ../domain/opener --output domain/opener --outpkg openermock --filename sink_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GameSource --dir ../usecase --output usecase --outpkg sourcemock --filename source_mock.go
