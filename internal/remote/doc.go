// Package remote implements domain.Engine against a running fitserver.
//
// Requests are plain JSON over HTTP. Failed responses carry the server's error
// envelope; its code is mapped back to the matching domain sentinel, so callers
// test remote failures with errors.Is exactly as they would local ones.
package remote
