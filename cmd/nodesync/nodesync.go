/*
github.com/hbickel/psweep - Benchmark automation harness for HPC proxy applications.
Copyright (C) 2026 The project authors - hbickel

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/
/*
nodesync stages inputs for a sweep on a list of cluster nodes through ssh: it
either runs a command on every node or rsyncs a local directory to them. If we
find ++ in the command we replace it with the node address (++ is a special
token). It is a staging tool only; the sweep itself stays sequential and local
to the launcher.
*/
package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hbickel/psweep/logging"
)

const maxConcurrent = 100

func main() {
	var nodeFile string
	var keyFile string
	var userName string
	var runRsync bool
	var retries int
	flag.StringVar(&nodeFile, "f", "nodefile", "Path to file containing the node addresses, 1 per line")
	flag.StringVar(&keyFile, "k", "key.pem", "Path to ssh key file")
	flag.StringVar(&userName, "u", "ec2-user", "User name on the nodes")
	flag.BoolVar(&runRsync, "r", false, "Rsync instead of ssh; args are the local directory then the remote one")
	flag.IntVar(&retries, "rt", 3, "Number of times to retry failed commands")
	flag.Parse()

	logging.Info("Reading node file: ", nodeFile)
	nodes, err := readNodes(nodeFile)
	if err != nil {
		logging.Error(err)
		os.Exit(1)
	}
	logging.Print("Loaded nodes: ", nodes)

	toRun := flag.Args()
	if runRsync && len(toRun) != 2 {
		logging.Error("rsync needs 2 args, the local directory and the remote one")
		os.Exit(1)
	}
	if !runRsync && len(toRun) == 0 {
		logging.Error("no command given")
		os.Exit(1)
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrent)
	for _, node := range nodes {
		argv := buildArgs(node, userName, keyFile, runRsync, toRun)
		g.Go(func() error {
			return runRetry(argv, retries)
		})
	}
	if err := g.Wait(); err != nil {
		logging.Error(err)
		os.Exit(1)
	}
}

func readNodes(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var nodes []string
	scn := bufio.NewScanner(f)
	for scn.Scan() {
		line := strings.TrimSpace(scn.Text())
		if line != "" {
			nodes = append(nodes, line)
		}
	}
	return nodes, scn.Err()
}

func buildArgs(node, user, keyFile string, runRsync bool, toRun []string) []string {
	if runRsync {
		return []string{"rsync", "-arce",
			fmt.Sprintf("ssh -o StrictHostKeyChecking=no -i %s", keyFile),
			"--exclude", "*.out",
			toRun[0], fmt.Sprintf("%s@%s:%s", user, node, toRun[1])}
	}
	remote := make([]string, len(toRun))
	copy(remote, toRun)
	for i, nxt := range remote {
		if nxt == "++" {
			remote[i] = node
		}
	}
	return []string{"ssh", "-o", "StrictHostKeyChecking no", "-i", keyFile,
		fmt.Sprintf("%s@%s", user, node), strings.Join(remote, " ")}
}

func runRetry(argv []string, retries int) error {
	var err error
	for i := 0; i < retries; i++ {
		cmd := exec.CommandContext(context.Background(), argv[0], argv[1:]...)
		logging.Print("Running command: ", argv)

		var out bytes.Buffer
		cmd.Stdout = &out
		cmd.Stderr = &out
		if err = cmd.Run(); err != nil {
			logging.Errorf("Error running command %v: %v, %s", argv, err, out.String())
			time.Sleep(10 * time.Second)
			continue
		}
		logging.Print("Ran command successfully: ", argv)
		return nil
	}
	return err
}
