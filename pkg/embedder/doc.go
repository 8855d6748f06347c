// Package embedder produces vector embeddings for KnowShowGo entities.
//
// Several KnowShowGo creation calls accept a pre-computed embedding vector.
// This package defines the Client interface for producing such vectors and
// provides an implementation backed by OpenAI-compatible embedding services.
// Nothing in the API client invokes an embedder implicitly; callers compute
// vectors explicitly and pass them along.
//
// # Usage
//
//	emb := embedder.NewOpenAIEmbedder(apiKey, embedder.Config{
//		Model: "text-embedding-3-small",
//	})
//
//	vector, err := emb.EmbedSingle(ctx, "a human individual")
//	if err != nil {
//		return err
//	}
//
//	uuid, err := client.CreatePrototype(ctx, knowshowgo.CreatePrototypeRequest{
//		Name:      "Person",
//		Embedding: vector,
//	})
//
// # Batch Processing
//
// Embed accepts multiple texts and splits them into provider-sized batches
// internally; EmbedSingle is a convenience wrapper for one text.
package embedder
