// Package collect gathers the results of concurrently executing indexed
// tasks into a slotbuf.Buffer.
//
// Gather implements the buffer's sanctioned concurrency pattern: tasks run
// in parallel, but every (slot, value) pair travels through a results
// channel to a single consumer that performs each Set synchronously. The
// buffer itself never needs internal locking.
//
// Merge is the transport half on its own: it fans any number of producer
// channels into one consumer channel.
package collect
