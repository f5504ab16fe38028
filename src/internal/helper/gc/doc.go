// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides pooled byte buffers for the file reads the validator
// performs repeatedly: configuration documents and bundled anchor
// certificates. Pooling keeps allocation pressure flat when many validation
// attempts resolve certificate anchors concurrently.
package gc
