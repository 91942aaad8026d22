// Command mediasearch builds and queries an in-memory media-item search
// index from a local or Postgres-backed corpus.
package main

func main() {
	Execute()
}
