// Package naming provides consistent naming functions for launched
// instances and key pair files.
//
// Multi-instance launches number the Name tag {base}-{index} starting at 1,
// so launching three "worker" instances produces worker-1 through worker-3.
// Key pair files are stored as {keypair}.pem, the file name the EC2 console
// hands out when a key pair is created.
package naming
