package src

import (
	"os"
	"os/signal"
	"syscall"

	"simple-stackqueue/utils"
)

type signalHandler func(sig os.Signal)

func SetupSignalHandler(shutdownFunc signalHandler) {
	closeSignalChan := make(chan os.Signal, 1)
	signal.Notify(closeSignalChan,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	go func() {
		sig := <-closeSignalChan
		shutdownFunc(sig)
	}()
}

//-----------------------------------------------------------------------------
// cli
//-----------------------------------------------------------------------------

// returns the shutdown handler of an interactive session, history is
// saved to histFile before exiting
func cliShutdown(histFile string) signalHandler {
	return func(sig os.Signal) {
		utils.InfoF("signal-handler Received %s, exiting...", sig.String())
		saveHistory(histFile)
		os.Exit(CLI_OK)
	}
}
